package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&HashPasswordRequest{Password: "correct horse"}).Validate())
	assert.NoError(t, (&HashPasswordRequest{Password: strings.Repeat("p", 72)}).Validate())
	assert.Error(t, (&HashPasswordRequest{}).Validate())
	assert.Error(t, (&HashPasswordRequest{Password: strings.Repeat("p", 73)}).Validate())
	assert.Error(t, (&HashPasswordRequest{Password: "bad\xffutf8"}).Validate())
}

func TestVerifyPasswordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&VerifyPasswordRequest{Password: "pw", Hash: "$2a$12$hash"}).Validate())
	assert.Error(t, (&VerifyPasswordRequest{Password: "pw"}).Validate())
	assert.Error(t, (&VerifyPasswordRequest{Hash: "$2a$12$hash"}).Validate())
	assert.Error(t, (&VerifyPasswordRequest{Password: "pw", Hash: " $2a$12$hash"}).Validate())
}

func TestSignRequest_Validate(t *testing.T) {
	assert.NoError(t, (&SignRequest{Data: "payload", Secret: "s"}).Validate())
	assert.NoError(t, (&SignRequest{Data: "", Secret: "s"}).Validate(), "empty data can be signed")
	assert.Error(t, (&SignRequest{Data: "payload"}).Validate())
}

func TestVerifySignatureRequest_Validate(t *testing.T) {
	assert.NoError(t, (&VerifySignatureRequest{Data: "d", Signature: "zz", Secret: "s"}).Validate())
	assert.Error(t, (&VerifySignatureRequest{Data: "d", Secret: "s"}).Validate())
	assert.Error(t, (&VerifySignatureRequest{Data: "d", Signature: "zz"}).Validate())
}

func TestVerifyTokenRequest_Validate(t *testing.T) {
	assert.NoError(t, (&VerifyTokenRequest{Token: "a.b.c"}).Validate())
	assert.Error(t, (&VerifyTokenRequest{}).Validate())
	assert.Error(t, (&VerifyTokenRequest{Token: "a.b.c "}).Validate())
}

func TestValidateAPIKeyRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ValidateAPIKeyRequest{APIKey: "bts_x"}).Validate())
	assert.Error(t, (&ValidateAPIKeyRequest{}).Validate())
}

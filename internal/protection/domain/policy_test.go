package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFieldName(t *testing.T) {
	for _, name := range []string{"apiKey", "api_key", "API-KEY", "ApiKey", "apikey"} {
		assert.Equal(t, "apikey", NormalizeFieldName(name), name)
	}
}

func TestPolicy_StrategyFor(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, KeepSuffix(4), p.StrategyFor("password"))
	assert.Equal(t, KeepSuffix(4), p.StrategyFor("refresh_token"))
	assert.Equal(t, Redact(), p.StrategyFor("CVV"))
	assert.Equal(t, Card(), p.StrategyFor("cardNumber"))
	assert.Equal(t, PassThrough, p.StrategyFor("orderId").Kind)
	assert.Equal(t, PassThrough, p.StrategyFor("passwordHint").Kind)
}

func TestPolicy_IsPersonal(t *testing.T) {
	p := DefaultPolicy()

	for _, field := range []string{"email", "firstName", "last_name", "phoneNumber", "dateOfBirth", "ipAddress"} {
		assert.True(t, p.IsPersonal(field), field)
	}
	for _, field := range []string{"businessData", "restaurantId", "password", ""} {
		assert.False(t, p.IsPersonal(field), field)
	}
}

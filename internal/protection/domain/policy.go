package domain

// Policy is the closed set of field names the masker recognizes.
//
// Keys are normalized with NormalizeFieldName. Fields absent from both tables pass
// through untouched.
type Policy struct {
	Sensitive map[string]Strategy
	Personal  map[string]struct{}
}

// DefaultPolicy returns the platform's masking and anonymization tables.
func DefaultPolicy() *Policy {
	sensitive := map[string]Strategy{
		"password":     KeepSuffix(4),
		"secret":       KeepSuffix(4),
		"token":        KeepSuffix(4),
		"apikey":       KeepSuffix(4),
		"accesstoken":  KeepSuffix(4),
		"refreshtoken": KeepSuffix(4),
		"clientsecret": KeepSuffix(4),
		"privatekey":   Redact(),
		"cvv":          Redact(),
		"cvc":          Redact(),
		"pin":          Redact(),
		"cardnumber":   Card(),
		"creditcard":   Card(),
		"pan":          Card(),
	}

	personal := map[string]struct{}{}
	for _, name := range []string{
		"email",
		"phone",
		"phonenumber",
		"firstname",
		"lastname",
		"fullname",
		"name",
		"address",
		"dateofbirth",
		"ipaddress",
	} {
		personal[name] = struct{}{}
	}

	return &Policy{Sensitive: sensitive, Personal: personal}
}

// StrategyFor returns the masking strategy for field, PassThrough when unrecognized.
func (p *Policy) StrategyFor(field string) Strategy {
	if s, ok := p.Sensitive[NormalizeFieldName(field)]; ok {
		return s
	}
	return Strategy{Kind: PassThrough}
}

// IsPersonal reports whether field holds a personal identifier.
func (p *Policy) IsPersonal(field string) bool {
	_, ok := p.Personal[NormalizeFieldName(field)]
	return ok
}

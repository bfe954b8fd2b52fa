package dto

// RecordResponse contains a masked or anonymized record.
type RecordResponse struct {
	Data map[string]any `json:"data"`
}

// MaskCardResponse contains a truncated card number.
type MaskCardResponse struct {
	Masked string `json:"masked"`
}

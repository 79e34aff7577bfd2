package model

type ChordResponse struct {
	Key     string   `json:"key"`
	Value   string   `json:"value"`
	MinFret int      `json:"min_fret"`
	MaxFret int      `json:"max_fret"`
	Notes   []string `json:"notes"`
}

type VariationsResponse struct {
	Name       string          `json:"name"`
	Variations []ChordResponse `json:"variations"`
}

type KeysResponse struct {
	RunId string   `json:"run_id"`
	Keys  []string `json:"keys"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

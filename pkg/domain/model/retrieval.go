package model

// QueryFilter narrows retrieval to records whose attributes match exactly
// (case-insensitive). Empty fields are ignored.
type QueryFilter struct {
	DeviceType string
	OS         string
	Category   string
}

// IsZero reports whether the filter constrains nothing
func (f QueryFilter) IsZero() bool {
	return f.DeviceType == "" && f.OS == "" && f.Category == ""
}

// RetrievalHit is a scored candidate produced by a single query. It is
// owned by the request that produced it and holds a direct back-reference
// to the source record instead of a serialized copy.
type RetrievalHit struct {
	ID         KnowledgeID
	Similarity float64
	Problem    string
	Category   string
	DeviceType string
	OS         string
	Record     *KnowledgeRecord
}

package opportunity

import (
	"encoding/json"
	"os"
	"time"
)

type ExcludedOpportunities struct {
	Items []*ExcludedOpportunity
}

type ExcludedOpportunity struct {
	ID           int
	URL          string
	Organization string
	ExcludedAt   time.Time
}

func (o *Opportunities) ToExcluded() *ExcludedOpportunities {
	excluded := &ExcludedOpportunities{}
	now := time.Now().UTC()
	for _, item := range o.Items {
		excluded.Items = append(excluded.Items, &ExcludedOpportunity{
			ID:           item.ID,
			URL:          item.ApplyURL,
			Organization: item.Organization,
			ExcludedAt:   now,
		})
	}
	return excluded
}

// GetExcludedFromFile reads an exclude file. A missing or empty file yields an empty list.
func GetExcludedFromFile(path string) (*ExcludedOpportunities, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ExcludedOpportunities{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedOpportunities{}, nil
	}

	var excluded ExcludedOpportunities
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedOpportunities) Append(s *ExcludedOpportunities) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedOpportunities) IDs() []int {
	ids := make([]int, 0, len(e.Items))
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (e *ExcludedOpportunities) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

package openlibrary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SearchResponse matches search.json
type SearchResponse struct {
	NumFound *int        `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

type SearchDoc struct {
	Key                 string      `json:"key"`
	Title               string      `json:"title"`
	Subtitle            string      `json:"subtitle"`
	AuthorNames         []string    `json:"author_name"`
	FirstPublishYear    *int        `json:"first_publish_year"`
	Language            []string    `json:"language"`
	Subject             []string    `json:"subject"`
	CoverID             int         `json:"cover_i"`
	CoverEditionKey     string      `json:"cover_edition_key"`
	EditionKeys         []string    `json:"edition_key"`
	IA                  []string    `json:"ia"`
	HasFulltext         bool        `json:"has_fulltext"`
	FirstSentence       FlexStrings `json:"first_sentence"`
	NumberOfPagesMedian *int        `json:"number_of_pages_median"`
}

// Ref is the {"key": "..."} shape used for links between records.
type Ref struct {
	Key string `json:"key"`
}

// TypedValue is the {"type": "...", "value": "..."} shape used for dates and text.
type TypedValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Work matches works/{id}.json
type Work struct {
	Key              string      `json:"key"`
	Title            string      `json:"title"`
	Description      interface{} `json:"description"` // Can be string or {type: ..., value: ...}
	Subjects         []string    `json:"subjects"`
	SubjectPlaces    []string    `json:"subject_places"`
	SubjectPeople    []string    `json:"subject_people"`
	SubjectTimes     []string    `json:"subject_times"`
	FirstPublishDate string      `json:"first_publish_date"`
	Created          *TypedValue `json:"created"`
	Authors          []struct {
		Author Ref `json:"author"`
	} `json:"authors"`
}

// AuthorKeys returns the author keys in the order the work lists them.
func (w *Work) AuthorKeys() []string {
	keys := make([]string, 0, len(w.Authors))
	for _, a := range w.Authors {
		if a.Author.Key != "" {
			keys = append(keys, a.Author.Key)
		}
	}
	return keys
}

// Edition is one entry of works/{id}/editions.json
type Edition struct {
	Key           string   `json:"key"`
	Title         string   `json:"title"`
	NumberOfPages *int     `json:"number_of_pages"`
	Publishers    []string `json:"publishers"`
	PublishDate   string   `json:"publish_date"`
	OCAID         string   `json:"ocaid"`
	Languages     []Ref    `json:"languages"`
	Covers        []int    `json:"covers"`
}

type EditionsResponse struct {
	Size    int       `json:"size"`
	Entries []Edition `json:"entries"`
}

// AuthorDetails matches authors/{key}.json
type AuthorDetails struct {
	Name         string      `json:"name"`
	PersonalName string      `json:"personal_name"`
	BirthDate    string      `json:"birth_date"`
	Bio          interface{} `json:"bio"` // Can be string or {type: ..., value: ...}
}

// DisplayName prefers the personal name, as the catalog UI does.
func (a *AuthorDetails) DisplayName() string {
	if a.PersonalName != "" {
		return a.PersonalName
	}
	return a.Name
}

// FlexStrings accepts a JSON string, an array of strings or null.
type FlexStrings []string

func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexStrings{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("flex strings: %w", err)
	}
	*f = list
	return nil
}

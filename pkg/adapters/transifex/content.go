package transifex

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

type translationPayload struct {
	Content *string `json:"content"`
}

type contentUpdate struct {
	Content string `json:"content"`
}

type resourceCreate struct {
	Slug               string `json:"slug"`
	Name               string `json:"name"`
	AcceptTranslations bool   `json:"accept_translations"`
	I18nType           string `json:"i18n_type"`
	Content            string `json:"content"`
}

// encodeContent renders strings as a YAML_GENERIC document rooted at the source language.
func encodeContent(source map[string]string, sourceLang string) (string, error) {
	if source == nil {
		source = map[string]string{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]map[string]string{sourceLang: source}); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// decodeContent extracts the non-empty strings under the source-language root.
// Scalars are kept in their literal form ("yes" stays "yes").
func decodeContent(content, sourceLang string) (map[string]string, error) {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("invalid resource content: %w", err)
	}

	out := make(map[string]string, len(doc[sourceLang]))
	for k, v := range doc[sourceLang] {
		if v != "" {
			out[k] = v
		}
	}
	return out, nil
}

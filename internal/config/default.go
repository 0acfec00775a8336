package config

import (
	"bytes"

	"emperror.dev/errors"
	"gopkg.in/yaml.v3"
)

// DefaultYAML renders the default configuration as a commented YAML
// document. Every key mirrors a configuration field, so the output
// round-trips through Load.
func DefaultYAML() ([]byte, error) {
	data, err := yaml.Marshal(Style)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render default configuration")
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to re-parse default configuration")
	}

	if len(doc.Content) > 0 {
		root := doc.Content[0]
		for i := 0; i+1 < len(root.Content); i += 2 {
			key := root.Content[i]
			switch key.Value {
			case "check":
				key.HeadComment = "Source-file style rules (ST001-ST010).\n" +
					"A zero limit disables the corresponding rule."
			case "commit":
				key.HeadComment = "Commit message conventions (\"type(scope): description\")."
			case "docs":
				key.HeadComment = "Documentation integrity checks."
			}
		}
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render default configuration")
	}

	var b bytes.Buffer
	b.WriteString("# stylecheck configuration.\n")
	b.WriteString("# Every key mirrors a configuration field; edit in place.\n\n")
	b.Write(out)
	return b.Bytes(), nil
}

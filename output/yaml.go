package output

import (
	"os"

	"github.com/jsphweid/fretdex/db"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML renders the database as a single mapping that keeps insertion order.
func YAML(d *db.Database) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range d.Entries() {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}
	return yaml.Marshal(doc)
}

func WriteYAML(path string, d *db.Database) error {
	data, err := YAML(d)
	if err != nil {
		return errors.Wrap(err, "marshalling yaml")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

package rules

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed spam_triggers.yaml
var spamTriggersYAML []byte

var spamTriggers []string

func init() {
	var doc struct {
		Triggers []string `yaml:"triggers"`
	}
	if err := yaml.Unmarshal(spamTriggersYAML, &doc); err != nil {
		panic(fmt.Sprintf("rules: parsing embedded spam triggers: %v", err))
	}
	spamTriggers = doc.Triggers
}

// SpamTriggers returns the embedded spam trigger dictionary in file order.
func SpamTriggers() []string {
	return spamTriggers
}

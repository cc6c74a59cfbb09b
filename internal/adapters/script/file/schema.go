package file

import (
	"fmt"
	"strings"

	"github.com/bnema/chainscript-cli/internal/domain"
)

const currentSchemaVersion = 1

type scriptSchema struct {
	Version int            `json:"version" yaml:"version"`
	Actions []actionSchema `json:"actions" yaml:"actions"`
}

type actionSchema struct {
	To   string `json:"to" yaml:"to"`
	Data string `json:"data" yaml:"data"`
}

func (s *scriptSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Actions == nil {
		s.Actions = []actionSchema{}
	}
}

func (s scriptSchema) validate() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported script schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	for i, action := range s.Actions {
		if strings.TrimSpace(action.To) == "" {
			return fmt.Errorf("action %d: \"to\" is required", i)
		}
		if strings.TrimSpace(action.Data) == "" {
			return fmt.Errorf("action %d: \"data\" is required", i)
		}
	}

	return nil
}

func toSchema(script domain.CallScript) scriptSchema {
	actions := make([]actionSchema, 0, len(script))
	for _, action := range script {
		actions = append(actions, actionSchema{To: action.Target(), Data: action.Payload()})
	}

	return scriptSchema{Version: currentSchemaVersion, Actions: actions}
}

func fromSchema(schema scriptSchema) domain.CallScript {
	script := make(domain.CallScript, 0, len(schema.Actions))
	for _, action := range schema.Actions {
		script = append(script, domain.NewCallAction(action.To, action.Data))
	}

	return script
}

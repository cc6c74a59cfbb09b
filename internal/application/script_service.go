package application

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bnema/chainscript-cli/internal/domain"
	"github.com/bnema/chainscript-cli/internal/ports"
)

const selectorLength = 4

type ScriptService struct {
	store   ports.ScriptStore
	buffers ports.Buffers
}

func NewScriptService(store ports.ScriptStore, buffers ports.Buffers) *ScriptService {
	return &ScriptService{store: store, buffers: buffers}
}

func (s *ScriptService) Load(ctx context.Context, path string) (domain.CallScript, error) {
	script, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}

	return script, nil
}

// Append adds action to the script at path, creating the file when missing.
func (s *ScriptService) Append(ctx context.Context, path string, action domain.CallAction) error {
	if strings.TrimSpace(action.Target()) == "" {
		return fmt.Errorf("call action target is required")
	}
	if strings.TrimSpace(action.Payload()) == "" {
		return fmt.Errorf("call action payload is required")
	}

	err := s.store.Update(ctx, path, func(script domain.CallScript) (domain.CallScript, error) {
		return append(script, action), nil
	})
	if err != nil {
		return fmt.Errorf("append to script: %w", err)
	}

	return nil
}

func (s *ScriptService) Inspect(ctx context.Context, path string) ([]ActionSummary, error) {
	script, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	summaries := make([]ActionSummary, 0, len(script))
	for i, action := range script {
		summary, err := s.summarize(i, action)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (s *ScriptService) summarize(index int, action domain.CallAction) (ActionSummary, error) {
	summary := ActionSummary{
		Index:        index,
		Target:       action.Target(),
		ValidAddress: common.IsHexAddress(action.Target()),
	}
	if summary.ValidAddress {
		summary.Checksummed = common.HexToAddress(action.Target()).Hex()
	}

	raw := strings.TrimSpace(action.Payload())
	if len(raw) >= 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		raw = raw[2:]
	}
	if len(raw)%2 != 0 {
		return ActionSummary{}, fmt.Errorf("%w: action %d has odd-length hex payload", domain.ErrInvalidPayload, index)
	}

	buf := s.buffers.Get(hex.DecodedLen(len(raw)))
	defer s.buffers.Put(buf)

	n, err := hex.Decode(buf, []byte(raw))
	if err != nil {
		return ActionSummary{}, fmt.Errorf("%w: action %d: %v", domain.ErrInvalidPayload, index, err)
	}

	summary.PayloadBytes = n
	if n >= selectorLength {
		summary.Selector = "0x" + hex.EncodeToString(buf[:selectorLength])
	}

	return summary, nil
}

// Package requests decodes node-definition files describing the initial
// layout of the simulated filesystem.
package requests

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/filesystem"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"gopkg.in/yaml.v3"
)

// GetNodeType extracts the node type from JSON without full unmarshaling
func GetNodeType(data []byte) (termfolio.NodeType, error) {
	var meta struct {
		Type termfolio.NodeType `json:"type"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", err
	}
	return meta.Type, nil
}

// UnmarshalDirRequest decodes a JSON directory definition
func UnmarshalDirRequest(data []byte) (*termfolio.DirCreateRequest, error) {
	var dto DirRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertDirDTO(dto)
}

// UnmarshalFileRequest decodes a JSON file definition
func UnmarshalFileRequest(data []byte) (*termfolio.FileCreateRequest, error) {
	var dto FileRequestDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return convertFileDTO(dto)
}

// UnmarshalLayout decodes a JSON array of node definitions into a Layout.
// Unknown node types are skipped with a warning.
func UnmarshalLayout(data []byte) (*filesystem.Layout, error) {
	logger := util.GetLogger("UnmarshalLayout")

	var rawNodes []json.RawMessage
	if err := json.Unmarshal(data, &rawNodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
	}

	layout := &filesystem.Layout{}
	for i, rawNode := range rawNodes {
		nodeType, err := GetNodeType(rawNode)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}

		switch nodeType {
		case termfolio.DirNodeType:
			req, err := UnmarshalDirRequest(rawNode)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			layout.Dirs = append(layout.Dirs, req)
			logger.Debug().Str("path", req.Path).Msg("Processed directory request")

		case termfolio.FileNodeType:
			req, err := UnmarshalFileRequest(rawNode)
			if err != nil {
				return nil, fmt.Errorf("node %d: %w", i, err)
			}
			layout.Files = append(layout.Files, req)
			logger.Debug().Str("path", req.Path).Msg("Processed file request")

		default:
			logger.Warn().Int("index", i).Str("type", string(nodeType)).Msg("Unknown node type")
		}
	}
	return layout, nil
}

// UnmarshalLayoutYAML decodes a YAML sequence of node definitions.
// It is normalised through JSON so both formats share one decoder.
func UnmarshalLayoutYAML(data []byte) (*filesystem.Layout, error) {
	var nodes []map[string]any
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
	}
	asJSON, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to normalise nodes: %w", err)
	}
	return UnmarshalLayout(asJSON)
}

// LoadNodesFile reads a node-definition file. Supports JSON (.json) and
// YAML (.yaml, .yml).
func LoadNodesFile(path string) (*filesystem.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return UnmarshalLayout(data)
	case ".yaml", ".yml":
		return UnmarshalLayoutYAML(data)
	default:
		return nil, fmt.Errorf("unknown nodes file extension: %s", path)
	}
}

func convertDirDTO(dto DirRequestDTO) (*termfolio.DirCreateRequest, error) {
	p, err := filesystem.CleanPath(dto.Path)
	if err != nil {
		return nil, err
	}
	return termfolio.NewDirRequest(p, dto.Entries...), nil
}

func convertFileDTO(dto FileRequestDTO) (*termfolio.FileCreateRequest, error) {
	p, err := filesystem.CleanPath(dto.Path)
	if err != nil {
		return nil, err
	}
	return termfolio.NewFileRequest(p, dto.Content), nil
}

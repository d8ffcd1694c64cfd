package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gerardcastell/Image-merger/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_merge").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsList responds with the full tool catalog.
func (s *Server) handleToolsList(req *RPCRequest) *RPCResponse {
	return &RPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *RPCRequest) *RPCResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &RPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_merge":
		return s.handleImageMerge(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

func (s *Server) errorResponse(id interface{}, code int, message, data string) *RPCResponse {
	return &RPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageMergeArgs struct {
	FirstPath   string              `json:"first_path"`
	SecondPath  string              `json:"second_path"`
	Orientation imaging.Orientation `json:"orientation"`
	OutputPath  string              `json:"output_path,omitempty"`
}

// MergeResult contains the outcome of an image_merge call.
//
// When the request named an output path, OutputPath is set and ImageBase64 is
// empty; otherwise the merged JPEG travels inline as base64.
type MergeResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MimeType    string `json:"mime_type"`
	ImageBase64 string `json:"image_base64,omitempty"`
	OutputPath  string `json:"output_path,omitempty"`
}

func (s *Server) handleImageMerge(args json.RawMessage) (interface{}, error) {
	var a imageMergeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img1, err := s.cache.Load(a.FirstPath)
	if err != nil {
		return nil, fmt.Errorf("first image: %w", err)
	}
	img2, err := s.cache.Load(a.SecondPath)
	if err != nil {
		return nil, fmt.Errorf("second image: %w", err)
	}

	merged, err := imaging.Merge(img1, img2, a.Orientation)
	if err != nil {
		return nil, err
	}

	data, err := imaging.EncodeJPEG(merged)
	if err != nil {
		return nil, err
	}

	result := &MergeResult{
		Width:    merged.Bounds().Dx(),
		Height:   merged.Bounds().Dy(),
		MimeType: "image/jpeg",
	}

	if a.OutputPath != "" {
		if err := os.WriteFile(a.OutputPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write merged image: %w", err)
		}
		result.OutputPath = a.OutputPath
		return result, nil
	}

	result.ImageBase64 = base64.StdEncoding.EncodeToString(data)
	return result, nil
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

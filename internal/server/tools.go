package server

// Tool represents a tool definition exposed over tools/list
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_merge",
			Description: "Merge two images into one by stacking them vertically or placing them side by side horizontally. Both images are rescaled to a common dimension before merging. Returns the merged JPEG as base64, or writes it to output_path if given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"first_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the first image (top for vertical, left for horizontal)",
					},
					"second_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the second image (bottom for vertical, right for horizontal)",
					},
					"orientation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Axis along which the images are concatenated",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the merged JPEG to. When set, the response omits the base64 payload.",
					},
				},
				"required": []string{"first_path", "second_path", "orientation"},
			},
		},
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, format, alpha presence, average color, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// Package server implements the stdio JSON-RPC service surface for the image
// merger.
//
// The server reads line-delimited JSON-RPC 2.0 requests from stdin and writes
// responses to stdout, following the MCP tool-calling conventions: clients
// call "initialize", list tools via "tools/list", and invoke them via
// "tools/call".
//
// # Available Tools
//
//   - image_merge: merge two image files along a vertical or horizontal axis
//     and return the combined JPEG (base64) or write it to a file.
//   - image_info: load an image file and report dimensions, format, alpha
//     presence, average color, and file size.
//   - image_dimensions: report just the width and height of an image file.
//
// # Error Mapping
//
// Tool execution failures are returned as JSON-RPC errors with code -32000,
// malformed parameters as -32602, and unknown methods as -32601. Merge
// errors (unsupported orientation, invalid input image, decode failures)
// all surface through the -32000 path with their message intact.
//
// Input images are cached by path across calls; merging the same pair with
// both orientations reads each file from disk once.
package server

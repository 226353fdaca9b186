package types

// GenerateRequest represents a text-to-image generation request payload.
type GenerateRequest struct {
	// Required prompt text to render.
	// example: a red circle on a white background
	Prompt string `json:"prompt" example:"a red circle on a white background"`
	// Output image width in pixels. Defaults to 1024 when omitted.
	// example: 1024
	Width int `json:"width,omitempty" example:"1024"`
	// Output image height in pixels. Defaults to 1024 when omitted.
	// example: 1024
	Height int `json:"height,omitempty" example:"1024"`
	// Number of denoising steps. Defaults to 28 when omitted.
	// example: 28
	Steps int `json:"steps,omitempty" example:"28"`
	// Classifier-free guidance scale. Defaults to 4.0 when omitted.
	// example: 4.0
	GuidanceScale float64 `json:"guidance_scale,omitempty" example:"4.0"`
	// Random seed for reproducibility; 0 or omitted lets the runtime choose.
	// example: 42
	Seed int64 `json:"seed,omitempty" example:"42"`
}

// GenerateResponse is returned by POST /generate.
type GenerateResponse struct {
	// Base64-encoded PNG image data.
	Image string `json:"image"`
	// MIME type of the encoded image.
	// example: image/png
	MimeType string `json:"mime_type" example:"image/png"`
	// Path of the saved file when an output directory is configured, else empty.
	// example: output/zimage/20240101_120000_1024x1024.png
	FilePath string `json:"file_path" example:"output/zimage/20240101_120000_1024x1024.png"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	// Static status string.
	// example: ok
	Status string `json:"status" example:"ok"`
	// Whether a pipeline has been loaded.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
	// Whether the server runs in mock mode.
	// example: false
	Mock bool `json:"mock" example:"false"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

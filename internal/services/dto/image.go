package dto

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateImageResponse struct {
	Credits     int    `json:"credits"`
	ResultImage string `json:"resultImage"` // data:image/png;base64,...
}

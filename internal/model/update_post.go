package model

type UpdatePostDTO struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	ImagePath *string `json:"imagePath,omitempty"`
}

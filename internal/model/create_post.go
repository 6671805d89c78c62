package model

type CreatePostDTO struct {
	CreatorID int64  `json:"creator"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImagePath string `json:"imagePath"`
}

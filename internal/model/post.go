package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	ImagePath string           `json:"imagePath"`
	CreatorID int64            `json:"creator"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
	UpdatedAt pgtype.Timestamp `json:"updated_at"`
}

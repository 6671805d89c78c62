package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"mymessages-post-service/internal/custom_errors"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/metrics"
	"mymessages-post-service/internal/model"
)

// PgDB is the subset of pgxpool.Pool the repository needs.
type PgDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostRepository struct {
	log     *logger.Logger
	db      PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"title":      post.Title,
		"content":    post.Content,
		"image_path": post.ImagePath,
		"creator_id": post.CreatorID,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO posts (title, content, image_path, creator_id, created_at, updated_at)
		VALUES (@title, @content, @image_path, @creator_id, @created_at, @updated_at)
		RETURNING id, title, content, image_path, creator_id, created_at, updated_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.Title,
		&createdPost.Content,
		&createdPost.ImagePath,
		&createdPost.CreatorID,
		&createdPost.CreatedAt,
		&createdPost.UpdatedAt,
	)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, content, image_path, creator_id, created_at, updated_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ImagePath,
		&post.CreatorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	return post, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	query := `SELECT id, title, content, image_path, creator_id, created_at, updated_at FROM posts`

	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.ImagePath,
			&post.CreatorID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	p.metrics.IncrementDatabaseQueries("post_list", true)
	return posts, nil
}

func (p *PostRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	var count int64
	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	p.metrics.RecordDatabaseQueryDuration("post_count", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_count", false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_count", true)
	return count, nil
}

func (p *PostRepository) UpdateOwned(ctx context.Context, id int64, creatorID int64, update *model.UpdatePostDTO) error {
	start := time.Now()
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id, "creator_id": creatorID}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.ImagePath != nil {
		setClauses = append(setClauses, "image_path = @image_path")
		args["image_path"] = *update.ImagePath
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamp{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") +
		" WHERE id = @id AND creator_id = @creator_id"

	result, err := p.db.Exec(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_update", false)
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_update", true)
	if result.RowsAffected() == 0 {
		// Missing post and foreign post are indistinguishable here on purpose.
		p.log.Debug("Update matched no rows", slog.Int64("id", id), slog.Int64("creator_id", creatorID))
		return custom_errors.ErrForbidden
	}
	return nil
}

func (p *PostRepository) DeleteOwned(ctx context.Context, id int64, creatorID int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id, "creator_id": creatorID}
	query := `DELETE FROM posts WHERE id = @id AND creator_id = @creator_id`
	result, err := p.db.Exec(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_delete", true)
	if result.RowsAffected() == 0 {
		p.log.Debug("Delete matched no rows", slog.Int64("id", id), slog.Int64("creator_id", creatorID))
		return custom_errors.ErrForbidden
	}
	return nil
}

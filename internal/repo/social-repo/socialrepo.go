package socialrepo

import (
	"context"

	"github.com/zestbet/zestbet/internal/domain"
	"github.com/zestbet/zestbet/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePost(ctx context.Context, userID int, content string) (*domain.SocialPost, error) {
	query := `
        INSERT INTO social_posts (user_id, content)
        VALUES ($1, $2)
        RETURNING id, user_id, content, created_at`
	var post domain.SocialPost
	err := r.db.QueryRow(ctx, query, userID, content).Scan(&post.ID, &post.UserID, &post.Content, &post.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create post", zap.Error(err))
		return nil, err
	}
	return &post, nil
}

// FindPosts returns newest-first posts with their like counts.
func (r *Repository) FindPosts(ctx context.Context, limit int) ([]domain.SocialPost, error) {
	query := `
        SELECT p.id, p.user_id, p.content,
               (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.id),
               p.created_at
        FROM social_posts p
        ORDER BY p.created_at DESC
        LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to query posts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var posts []domain.SocialPost
	for rows.Next() {
		var post domain.SocialPost
		if err := rows.Scan(&post.ID, &post.UserID, &post.Content, &post.Likes, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *Repository) PostExists(ctx context.Context, postID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM social_posts WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, postID).Scan(&exists); err != nil {
		zap.L().Error("failed to check post existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CreateComment(ctx context.Context, postID, userID int, content string) (*domain.Comment, error) {
	query := `
        INSERT INTO comments (post_id, user_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, post_id, user_id, content, created_at`
	var comment domain.Comment
	err := r.db.QueryRow(ctx, query, postID, userID, content).Scan(
		&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create comment", zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

// FindComments returns a post's comments oldest-first.
func (r *Repository) FindComments(ctx context.Context, postID int) ([]domain.Comment, error) {
	query := `
        SELECT id, post_id, user_id, content, created_at
        FROM comments
        WHERE post_id = $1
        ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		zap.L().Error("failed to query comments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// ToggleLike flips the like state and reports whether the post is now liked.
func (r *Repository) ToggleLike(ctx context.Context, postID, userID int) (bool, error) {
	del := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, del, postID, userID)
	if err != nil {
		zap.L().Error("failed to unlike post", zap.Error(err))
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}
	ins := `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(ctx, ins, postID, userID); err != nil {
		zap.L().Error("failed to like post", zap.Error(err))
		return false, err
	}
	return true, nil
}

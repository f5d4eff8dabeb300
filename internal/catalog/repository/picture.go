package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// PictureRepository stores picture rows in the database and, when a blob store
// is configured, their content in the blob store under StorageKey.
type PictureRepository struct {
	rows  *GormRepository[domain.Picture, *domain.Picture]
	blobs interfaces.BlobStore
}

var _ interfaces.Repository[*domain.Picture] = (*PictureRepository)(nil)

// NewPictureRepository creates a picture repository. A nil store keeps content in the database.
func NewPictureRepository(db *gorm.DB, blobs interfaces.BlobStore) *PictureRepository {
	return &PictureRepository{rows: NewPictureRowRepository(db), blobs: blobs}
}

func (r *PictureRepository) FindAll(ctx context.Context) ([]*domain.Picture, error) {
	pictures, err := r.rows.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, picture := range pictures {
		if err := r.load(ctx, picture); err != nil {
			return nil, err
		}
	}
	return pictures, nil
}

func (r *PictureRepository) FindByID(ctx context.Context, id int) (*domain.Picture, error) {
	picture, err := r.rows.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.load(ctx, picture); err != nil {
		return nil, err
	}
	return picture, nil
}

func (r *PictureRepository) Save(ctx context.Context, picture *domain.Picture) error {
	row, err := r.offload(ctx, picture)
	if err != nil {
		return err
	}
	if err := r.rows.Save(ctx, row); err != nil {
		return err
	}
	picture.ID = row.ID
	picture.StorageKey = row.StorageKey
	return nil
}

func (r *PictureRepository) SaveAll(ctx context.Context, pictures []*domain.Picture) error {
	rows := make([]*domain.Picture, len(pictures))
	for i, picture := range pictures {
		if r.blobs != nil && picture.StorageKey != "" {
			// content is already stored under its key
			row := *picture
			row.Content = nil
			rows[i] = &row
			continue
		}
		row, err := r.offload(ctx, picture)
		if err != nil {
			return err
		}
		rows[i] = row
	}
	if err := r.rows.SaveAll(ctx, rows); err != nil {
		return err
	}
	for i, row := range rows {
		pictures[i].ID = row.ID
		pictures[i].StorageKey = row.StorageKey
	}
	return nil
}

func (r *PictureRepository) Delete(ctx context.Context, id int) error {
	picture, err := r.rows.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.rows.Delete(ctx, id); err != nil {
		return err
	}
	return r.drop(ctx, picture)
}

func (r *PictureRepository) DeleteAll(ctx context.Context) error {
	pictures, err := r.rows.FindAll(ctx)
	if err != nil {
		return err
	}
	if err := r.rows.DeleteAll(ctx); err != nil {
		return err
	}
	for _, picture := range pictures {
		if err := r.drop(ctx, picture); err != nil {
			return err
		}
	}
	return nil
}

// offload writes the content to the blob store and returns the row to persist.
func (r *PictureRepository) offload(ctx context.Context, picture *domain.Picture) (*domain.Picture, error) {
	if r.blobs == nil || picture.Content == nil {
		return picture, nil
	}

	row := *picture
	if row.StorageKey == "" {
		row.StorageKey = uuid.NewString()
	}
	if err := r.blobs.Store(ctx, row.StorageKey, bytes.NewReader(picture.Content)); err != nil {
		return nil, pkgerrors.Internal(fmt.Sprintf("failed to store picture content %s", row.StorageKey), err)
	}
	row.Content = nil
	return &row, nil
}

func (r *PictureRepository) load(ctx context.Context, picture *domain.Picture) error {
	if r.blobs == nil || picture.StorageKey == "" {
		return nil
	}

	reader, err := r.blobs.Retrieve(ctx, picture.StorageKey)
	if err != nil {
		return pkgerrors.Internal(fmt.Sprintf("failed to retrieve picture content %s", picture.StorageKey), err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return pkgerrors.Internal(fmt.Sprintf("failed to read picture content %s", picture.StorageKey), err)
	}
	picture.Content = content
	return nil
}

func (r *PictureRepository) drop(ctx context.Context, picture *domain.Picture) error {
	if r.blobs == nil || picture.StorageKey == "" {
		return nil
	}
	if err := r.blobs.Delete(ctx, picture.StorageKey); err != nil && !pkgerrors.IsNotFound(err) {
		return pkgerrors.Internal(fmt.Sprintf("failed to delete picture content %s", picture.StorageKey), err)
	}
	return nil
}

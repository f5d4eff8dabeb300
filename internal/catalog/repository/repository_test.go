package repository_test

import (
	"bytes"
	"context"
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type RepositoryTestSuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = testutil.NewTestDB(suite.T())
}

func (suite *RepositoryTestSuite) saveGenres(names ...string) []*domain.Genre {
	repo := repository.NewGenreRepository(suite.db)
	genres := make([]*domain.Genre, len(names))
	for i, name := range names {
		genres[i] = testutil.CreateTestGenre(name)
		genres[i].Position = i
		suite.Require().NoError(repo.Save(suite.ctx, genres[i]))
	}
	return genres
}

func (suite *RepositoryTestSuite) TestMovie_SaveLoadsChildrenAndGenres() {
	// Arrange
	genres := suite.saveGenres("Drama", "Comedy")
	repo := repository.NewMovieRepository(suite.db)
	movie := testutil.CreateTestMovie("Movie", 2, genres[1], genres[0])

	// Act
	err := repo.Save(suite.ctx, movie)

	// Assert
	suite.Require().NoError(err)
	suite.NotZero(movie.ID)

	loaded, err := repo.FindByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Equal("Movie", loaded.CzechName)
	suite.Equal([]domain.Language{domain.LanguageCZ}, loaded.Subtitles)
	suite.Require().Len(loaded.Media, 2)
	suite.Equal(1, loaded.Media[0].Number)
	suite.Equal(2, loaded.Media[1].Number)
	suite.Require().Len(loaded.Genres, 2)
	suite.Equal("Drama", loaded.Genres[0].Name)
	suite.Equal("Comedy", loaded.Genres[1].Name)
}

func (suite *RepositoryTestSuite) TestMovie_UpdatePrunesRemovedMediaAndGenres() {
	// Arrange
	genres := suite.saveGenres("Drama", "Comedy")
	repo := repository.NewMovieRepository(suite.db)
	movie := testutil.CreateTestMovie("Movie", 3, genres...)
	suite.Require().NoError(repo.Save(suite.ctx, movie))
	kept := movie.Media[2].ID

	movie.Media = movie.Media[2:]
	movie.Media = append(movie.Media, &domain.Medium{Number: 9, Length: 5, Item: domain.Item{Position: 3}})
	movie.Genres = genres[1:]

	// Act
	err := repo.Save(suite.ctx, movie)

	// Assert
	suite.Require().NoError(err)
	loaded, err := repo.FindByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Media, 2)
	suite.Equal(kept, loaded.Media[0].ID)
	suite.Equal(9, loaded.Media[1].Number)
	suite.Require().Len(loaded.Genres, 1)
	suite.Equal("Comedy", loaded.Genres[0].Name)

	var media int64
	suite.Require().NoError(suite.db.Model(&domain.Medium{}).Count(&media).Error)
	suite.Equal(int64(2), media)
}

func (suite *RepositoryTestSuite) TestMovie_ClearGenres() {
	genres := suite.saveGenres("Drama")
	repo := repository.NewMovieRepository(suite.db)
	movie := testutil.CreateTestMovie("Movie", 1, genres...)
	suite.Require().NoError(repo.Save(suite.ctx, movie))

	movie.Genres = nil
	suite.Require().NoError(repo.Save(suite.ctx, movie))

	loaded, err := repo.FindByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Empty(loaded.Genres)

	var count int64
	suite.Require().NoError(suite.db.Model(&domain.Genre{}).Count(&count).Error)
	suite.Equal(int64(1), count, "genres are references, never deleted with the movie")
}

func (suite *RepositoryTestSuite) TestShow_PrunesSeasonsAndEpisodes() {
	// Arrange
	repo := repository.NewShowRepository(suite.db)
	show := testutil.CreateTestShow("Show", 2, 3)
	suite.Require().NoError(repo.Save(suite.ctx, show))

	removedSeason := show.Seasons[0].ID
	show.Seasons = show.Seasons[1:]
	show.Seasons[0].Episodes = show.Seasons[0].Episodes[:1]

	// Act
	err := repo.Save(suite.ctx, show)

	// Assert
	suite.Require().NoError(err)
	loaded, err := repo.FindByID(suite.ctx, show.ID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Seasons, 1)
	suite.NotEqual(removedSeason, loaded.Seasons[0].ID)
	suite.Len(loaded.Seasons[0].Episodes, 1)

	var episodes int64
	suite.Require().NoError(suite.db.Model(&domain.Episode{}).Count(&episodes).Error)
	suite.Equal(int64(1), episodes)
}

func (suite *RepositoryTestSuite) TestShow_LoadsChildrenInPositionOrder() {
	repo := repository.NewShowRepository(suite.db)
	show := testutil.CreateTestShow("Show", 2, 2)
	show.Seasons[0].Position = 5
	show.Seasons[1].Episodes[0].Position = 3
	suite.Require().NoError(repo.Save(suite.ctx, show))

	loaded, err := repo.FindByID(suite.ctx, show.ID)

	suite.Require().NoError(err)
	suite.Equal(2, loaded.Seasons[0].Number)
	suite.Equal(1, loaded.Seasons[1].Number)
	suite.Equal(2, loaded.Seasons[0].Episodes[0].Number)
}

func (suite *RepositoryTestSuite) TestGame_ReplaceAndRemoveCheat() {
	// Arrange
	repo := repository.NewGameRepository(suite.db)
	game := testutil.CreateTestGame("Game", 2)
	suite.Require().NoError(repo.Save(suite.ctx, game))
	oldCheat := game.Cheat.ID

	// Act - replace the cheat with a new one
	game.Cheat = testutil.CreateTestCheat(1)
	err := repo.Save(suite.ctx, game)

	// Assert
	suite.Require().NoError(err)
	loaded, err := repo.FindByID(suite.ctx, game.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Cheat)
	suite.NotEqual(oldCheat, loaded.Cheat.ID)
	suite.Len(loaded.Cheat.Data, 1)

	// Act - remove the cheat
	loaded.Cheat = nil
	suite.Require().NoError(repo.Save(suite.ctx, loaded))

	// Assert
	reloaded, err := repo.FindByID(suite.ctx, game.ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.Cheat)

	var data int64
	suite.Require().NoError(suite.db.Model(&domain.CheatData{}).Count(&data).Error)
	suite.Zero(data)
}

func (suite *RepositoryTestSuite) TestGame_SaveWithExplicitID() {
	repo := repository.NewGameRepository(suite.db)
	game := testutil.CreateTestGame("Game", 1)
	game.ID = math.MaxInt32

	suite.Require().NoError(repo.Save(suite.ctx, game))

	loaded, err := repo.FindByID(suite.ctx, math.MaxInt32)
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Cheat)
	suite.Equal(math.MaxInt32, loaded.Cheat.GameID)
}

func (suite *RepositoryTestSuite) TestMusic_DeleteCascadesSongs() {
	// Arrange
	repo := repository.NewMusicRepository(suite.db)
	music := testutil.CreateTestMusic("Music", 3)
	other := testutil.CreateTestMusic("Other", 1)
	suite.Require().NoError(repo.SaveAll(suite.ctx, []*domain.Music{music, other}))

	// Act
	err := repo.Delete(suite.ctx, music.ID)

	// Assert
	suite.Require().NoError(err)
	_, err = repo.FindByID(suite.ctx, music.ID)
	suite.True(pkgerrors.IsNotFound(err))

	var songs int64
	suite.Require().NoError(suite.db.Model(&domain.Song{}).Count(&songs).Error)
	suite.Equal(int64(1), songs)
}

func (suite *RepositoryTestSuite) TestDelete_MissingIsNotFound() {
	repo := repository.NewProgramRepository(suite.db)

	err := repo.Delete(suite.ctx, 42)

	suite.True(pkgerrors.IsNotFound(err))
	suite.Contains(err.Error(), "program 42 not found")
}

func (suite *RepositoryTestSuite) TestFindAll_OrderedByPositionThenID() {
	repo := repository.NewProgramRepository(suite.db)
	for i, position := range []int{2, 0, 0} {
		program := testutil.CreateTestProgram(string(rune('A' + i)))
		program.Position = position
		suite.Require().NoError(repo.Save(suite.ctx, program))
	}

	programs, err := repo.FindAll(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(programs, 3)
	suite.Equal("B", programs[0].Name)
	suite.Equal("C", programs[1].Name)
	suite.Equal("A", programs[2].Name)
}

func (suite *RepositoryTestSuite) TestDeleteAll_RemovesEverything() {
	// Arrange
	genres := suite.saveGenres("Drama")
	repo := repository.NewShowRepository(suite.db)
	for _, name := range []string{"One", "Two"} {
		show := testutil.CreateTestShow(name, 1, 2)
		show.Genres = genres
		suite.Require().NoError(repo.Save(suite.ctx, show))
	}

	// Act
	err := repo.DeleteAll(suite.ctx)

	// Assert
	suite.Require().NoError(err)
	shows, err := repo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(shows)

	for _, model := range []interface{}{&domain.Season{}, &domain.Episode{}} {
		var count int64
		suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
		suite.Zero(count)
	}
	var links int64
	suite.Require().NoError(suite.db.Table("show_genres").Count(&links).Error)
	suite.Zero(links)
}

func (suite *RepositoryTestSuite) TestGenre_DeleteDropsReferences() {
	genres := suite.saveGenres("Drama", "Comedy")
	movies := repository.NewMovieRepository(suite.db)
	movie := testutil.CreateTestMovie("Movie", 1, genres...)
	suite.Require().NoError(movies.Save(suite.ctx, movie))

	suite.Require().NoError(repository.NewGenreRepository(suite.db).Delete(suite.ctx, genres[0].ID))

	loaded, err := movies.FindByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Genres, 1)
	suite.Equal("Comedy", loaded.Genres[0].Name)
}

func (suite *RepositoryTestSuite) TestPicture_DeleteClearsReferences() {
	pictures := repository.NewPictureRepository(suite.db, nil)
	picture := testutil.CreateTestPicture("image")
	suite.Require().NoError(pictures.Save(suite.ctx, picture))

	movies := repository.NewMovieRepository(suite.db)
	movie := testutil.CreateTestMovie("Movie", 1)
	movie.Picture = &picture.ID
	suite.Require().NoError(movies.Save(suite.ctx, movie))

	suite.Require().NoError(pictures.Delete(suite.ctx, picture.ID))

	loaded, err := movies.FindByID(suite.ctx, movie.ID)
	suite.Require().NoError(err)
	suite.Nil(loaded.Picture)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

// memoryBlobStore keeps blobs in a map.
type memoryBlobStore struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	stores int
}

func newMemoryBlobStore() *memoryBlobStore {
	return &memoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *memoryBlobStore) Store(ctx context.Context, key string, reader io.Reader) error {
	content, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = content
	s.stores++
	return nil
}

func (s *memoryBlobStore) Retrieve(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.blobs[key]
	if !ok {
		return nil, pkgerrors.NotFound("blob not found")
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (s *memoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

func (s *memoryBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key]
	return ok, nil
}

func TestPictureRepository_OffloadsContentToBlobStore(t *testing.T) {
	// Arrange
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	blobs := newMemoryBlobStore()
	repo := repository.NewPictureRepository(db, blobs)
	picture := testutil.CreateTestPicture("image bytes")

	// Act
	err := repo.Save(ctx, picture)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, picture.StorageKey)
	assert.Equal(t, []byte("image bytes"), picture.Content)
	assert.Equal(t, []byte("image bytes"), blobs.blobs[picture.StorageKey])

	var row domain.Picture
	require.NoError(t, db.First(&row, picture.ID).Error)
	assert.Empty(t, row.Content)

	loaded, err := repo.FindByID(ctx, picture.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), loaded.Content)

	// Updating keeps the key
	key := picture.StorageKey
	picture.Content = []byte("new bytes")
	require.NoError(t, repo.Save(ctx, picture))
	assert.Equal(t, key, picture.StorageKey)
	assert.Equal(t, []byte("new bytes"), blobs.blobs[key])

	// Deleting drops the blob
	require.NoError(t, repo.Delete(ctx, picture.ID))
	exists, err := blobs.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPictureRepository_SaveAllRewritesOnlyRowsOfStoredPictures(t *testing.T) {
	// Arrange
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	blobs := newMemoryBlobStore()
	repo := repository.NewPictureRepository(db, blobs)
	first := testutil.CreateTestPicture("first")
	second := testutil.CreateTestPicture("second")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.Equal(t, 2, blobs.stores)

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	stored[0].Position, stored[1].Position = 1, 0
	added := testutil.CreateTestPicture("third")
	added.Position = 2

	// Act
	err = repo.SaveAll(ctx, append(stored, added))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, blobs.stores, "only the new picture is uploaded")
	require.NotEmpty(t, added.StorageKey)
	assert.Equal(t, []byte("third"), blobs.blobs[added.StorageKey])

	reloaded, err := repo.FindByID(ctx, stored[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Position)
	assert.Equal(t, stored[0].Content, reloaded.Content)
	assert.Equal(t, stored[0].StorageKey, reloaded.StorageKey)
}

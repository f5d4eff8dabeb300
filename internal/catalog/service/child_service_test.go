package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/internal/catalog/service"
	pkgerrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/pkg/utils"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type ChildServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      *recordingBus
	cache    *utils.InMemoryCache
	music    *service.MovableService[*domain.Music]
	songs    *service.ChildService[*domain.Song]
	shows    *service.MovableService[*domain.Show]
	seasons  *service.ChildService[*domain.Season]
	episodes *service.ChildService[*domain.Episode]
	games    *service.MovableService[*domain.Game]
	cheats   *service.ChildService[*domain.Cheat]
}

func (suite *ChildServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	db := testutil.NewTestDB(suite.T())
	log := logger.NewNoop()
	suite.bus = &recordingBus{}
	suite.cache = utils.NewInMemoryCache()

	suite.music = service.NewMovableService[*domain.Music]("music", repository.NewMusicRepository(db), suite.bus, suite.cache, log)
	suite.songs = service.NewChildService("song", service.NewSongHierarchy(suite.music), suite.bus, log)
	suite.shows = service.NewMovableService[*domain.Show]("show", repository.NewShowRepository(db), suite.bus, suite.cache, log)
	suite.seasons = service.NewChildService("season", service.NewSeasonHierarchy(suite.shows), suite.bus, log)
	suite.episodes = service.NewChildService("episode", service.NewEpisodeHierarchy(suite.shows), suite.bus, log)
	suite.games = service.NewMovableService[*domain.Game]("game", repository.NewGameRepository(db), suite.bus, suite.cache, log)
	suite.cheats = service.NewChildService("cheat", service.NewCheatHierarchy(suite.games), suite.bus, log)
}

func (suite *ChildServiceTestSuite) TearDownTest() {
	suite.cache.Close()
}

func songNames(songs []*domain.Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Name
	}
	return out
}

func (suite *ChildServiceTestSuite) TestSongs_AddFindAndGet() {
	// Arrange
	music, err := suite.music.Add(suite.ctx, testutil.CreateTestMusic("Album", 2))
	suite.Require().NoError(err)

	// Act
	added, err := suite.songs.Add(suite.ctx, music.ID, testutil.CreateTestSong("New"))

	// Assert
	suite.Require().NoError(err)
	suite.NotZero(added.ID)
	suite.Equal(2, added.Position)

	songs, err := suite.songs.Find(suite.ctx, music.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Song 1", "Song 2", "New"}, songNames(songs))

	got, err := suite.songs.Get(suite.ctx, added.ID)
	suite.Require().NoError(err)
	suite.Equal("New", got.Name)
	suite.Contains(suite.bus.types(), "catalog.song.created")
}

func (suite *ChildServiceTestSuite) TestSongs_MissingParentAndChild() {
	_, err := suite.songs.Add(suite.ctx, 99, testutil.CreateTestSong("New"))
	suite.True(pkgerrors.IsNotFound(err))

	_, err = suite.songs.Get(suite.ctx, 99)
	suite.True(pkgerrors.IsNotFound(err))
	suite.Contains(err.Error(), "song 99 not found")
}

func (suite *ChildServiceTestSuite) TestSongs_UpdateRemoveDuplicate() {
	// Arrange
	music, err := suite.music.Add(suite.ctx, testutil.CreateTestMusic("Album", 3))
	suite.Require().NoError(err)
	songs, err := suite.songs.Find(suite.ctx, music.ID)
	suite.Require().NoError(err)

	// Act - update
	songs[0].Name = "Renamed"
	suite.Require().NoError(suite.songs.Update(suite.ctx, songs[0]))

	// Act - remove
	suite.Require().NoError(suite.songs.Remove(suite.ctx, songs[1].ID))

	// Act - duplicate
	duplicate, err := suite.songs.Duplicate(suite.ctx, songs[2].ID)
	suite.Require().NoError(err)

	// Assert
	suite.NotEqual(songs[2].ID, duplicate.ID)
	stored, err := suite.songs.Find(suite.ctx, music.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Renamed", "Song 3", "Song 3"}, songNames(stored))
	suite.Equal(3, stored[2].Position)
}

func (suite *ChildServiceTestSuite) TestSongs_Move() {
	music, err := suite.music.Add(suite.ctx, testutil.CreateTestMusic("Album", 3))
	suite.Require().NoError(err)
	songs, err := suite.songs.Find(suite.ctx, music.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.songs.MoveDown(suite.ctx, songs[0].ID))
	suite.Require().NoError(suite.songs.MoveUp(suite.ctx, songs[2].ID))

	stored, err := suite.songs.Find(suite.ctx, music.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"Song 2", "Song 3", "Song 1"}, songNames(stored))

	err = suite.songs.MoveUp(suite.ctx, stored[0].ID)
	suite.True(pkgerrors.IsBadRequest(err))
}

func (suite *ChildServiceTestSuite) TestSongs_Siblings() {
	music, err := suite.music.Add(suite.ctx, testutil.CreateTestMusic("Album", 2))
	suite.Require().NoError(err)
	_, err = suite.music.Add(suite.ctx, testutil.CreateTestMusic("Other", 4))
	suite.Require().NoError(err)

	siblings, err := suite.songs.Siblings(suite.ctx, music.Songs[1].ID)

	suite.Require().NoError(err)
	suite.Len(siblings, 2)
}

func (suite *ChildServiceTestSuite) TestEpisodes_RootedAtShow() {
	// Arrange
	show, err := suite.shows.Add(suite.ctx, testutil.CreateTestShow("Show", 2, 1))
	suite.Require().NoError(err)
	season := show.Seasons[1]

	// Act
	episode, err := suite.episodes.Add(suite.ctx, season.ID, testutil.CreateTestEpisode(2))
	suite.Require().NoError(err)

	// Assert
	episodes, err := suite.episodes.Find(suite.ctx, season.ID)
	suite.Require().NoError(err)
	suite.Len(episodes, 2)
	suite.Equal(episode.ID, episodes[1].ID)

	stored, err := suite.shows.Get(suite.ctx, show.ID)
	suite.Require().NoError(err)
	suite.Len(stored.Seasons[0].Episodes, 1)
	suite.Len(stored.Seasons[1].Episodes, 2)
	suite.Equal(3, stored.EpisodesCount())

	_, err = suite.episodes.Find(suite.ctx, 999)
	suite.True(pkgerrors.IsNotFound(err))
}

func (suite *ChildServiceTestSuite) TestSeasons_DuplicateCopiesEpisodes() {
	show, err := suite.shows.Add(suite.ctx, testutil.CreateTestShow("Show", 1, 3))
	suite.Require().NoError(err)

	duplicate, err := suite.seasons.Duplicate(suite.ctx, show.Seasons[0].ID)
	suite.Require().NoError(err)

	stored, err := suite.shows.Get(suite.ctx, show.ID)
	suite.Require().NoError(err)
	suite.Require().Len(stored.Seasons, 2)
	suite.Equal(duplicate.ID, stored.Seasons[1].ID)
	suite.Len(stored.Seasons[1].Episodes, 3)
	suite.NotEqual(stored.Seasons[0].Episodes[0].ID, stored.Seasons[1].Episodes[0].ID)
}

func (suite *ChildServiceTestSuite) TestCheat_AddAndRemove() {
	game, err := suite.games.Add(suite.ctx, testutil.CreateTestGame("Game", -1))
	suite.Require().NoError(err)

	cheat, err := suite.cheats.Add(suite.ctx, game.ID, testutil.CreateTestCheat(2))
	suite.Require().NoError(err)

	stored, err := suite.games.Get(suite.ctx, game.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored.Cheat)
	suite.Equal(cheat.ID, stored.Cheat.ID)
	suite.Len(stored.Cheat.Data, 2)

	suite.Require().NoError(suite.cheats.Remove(suite.ctx, cheat.ID))

	stored, err = suite.games.Get(suite.ctx, game.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.Cheat)
}

func TestChildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChildServiceTestSuite))
}

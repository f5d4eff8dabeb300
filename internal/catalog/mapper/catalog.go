package mapper

import (
	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/entity"
)

// Nested lists are positioned by their index in the entity.

// Genre maps genres.
var Genre Mapper[*entity.Genre, *domain.Genre] = funcs[*entity.Genre, *domain.Genre]{
	toEntity: func(g *domain.Genre) *entity.Genre {
		return &entity.Genre{Item: item(g.Item), Name: entity.Ptr(g.Name)}
	},
	toDomain: func(g *entity.Genre) *domain.Genre {
		return &domain.Genre{Item: domainItem(g.Item), Name: value(g.Name)}
	},
}

// Picture maps pictures. The storage key is not part of the entity.
var Picture Mapper[*entity.Picture, *domain.Picture] = funcs[*entity.Picture, *domain.Picture]{
	toEntity: func(p *domain.Picture) *entity.Picture {
		return &entity.Picture{Item: item(p.Item), Content: p.Content}
	},
	toDomain: func(p *entity.Picture) *domain.Picture {
		return &domain.Picture{Item: domainItem(p.Item), Content: p.Content}
	},
}

// Movie maps movies with their media and genres.
var Movie Mapper[*entity.Movie, *domain.Movie] = funcs[*entity.Movie, *domain.Movie]{
	toEntity: func(m *domain.Movie) *entity.Movie {
		media := make([]*entity.Medium, 0, len(m.Media))
		for _, medium := range m.Media {
			media = append(media, &entity.Medium{ID: id(medium.ID), Number: medium.Number, Length: medium.Length})
		}
		return &entity.Movie{
			Item:         item(m.Item),
			CzechName:    entity.Ptr(m.CzechName),
			OriginalName: entity.Ptr(m.OriginalName),
			Year:         m.Year,
			Language:     language(m.Language),
			Subtitles:    languages(m.Subtitles),
			Media:        media,
			Csfd:         m.Csfd,
			ImdbCode:     m.ImdbCode,
			WikiEn:       m.WikiEn,
			WikiCz:       m.WikiCz,
			Picture:      m.Picture,
			Note:         m.Note,
			Genres:       ToEntities(Genre, m.Genres),
		}
	},
	toDomain: func(m *entity.Movie) *domain.Movie {
		movie := &domain.Movie{
			Item:         domainItem(m.Item),
			CzechName:    value(m.CzechName),
			OriginalName: value(m.OriginalName),
			Year:         m.Year,
			Language:     domain.Language(value(m.Language)),
			Subtitles:    domainLanguages(m.Subtitles),
			Csfd:         m.Csfd,
			ImdbCode:     m.ImdbCode,
			WikiEn:       m.WikiEn,
			WikiCz:       m.WikiCz,
			Picture:      m.Picture,
			Note:         m.Note,
			Genres:       ToDomains(Genre, m.Genres),
		}
		for i, medium := range m.Media {
			movie.Media = append(movie.Media, &domain.Medium{
				Item:    domain.Item{ID: value(medium.ID), Position: i},
				MovieID: movie.ID,
				Number:  medium.Number,
				Length:  medium.Length,
			})
		}
		return movie
	},
}

// Show maps shows. Seasons are not part of the entity.
var Show Mapper[*entity.Show, *domain.Show] = funcs[*entity.Show, *domain.Show]{
	toEntity: func(s *domain.Show) *entity.Show {
		return &entity.Show{
			Item:         item(s.Item),
			CzechName:    entity.Ptr(s.CzechName),
			OriginalName: entity.Ptr(s.OriginalName),
			Csfd:         s.Csfd,
			ImdbCode:     s.ImdbCode,
			WikiEn:       s.WikiEn,
			WikiCz:       s.WikiCz,
			Picture:      s.Picture,
			Note:         s.Note,
			Genres:       ToEntities(Genre, s.Genres),
		}
	},
	toDomain: func(s *entity.Show) *domain.Show {
		return &domain.Show{
			Item:         domainItem(s.Item),
			CzechName:    value(s.CzechName),
			OriginalName: value(s.OriginalName),
			Csfd:         s.Csfd,
			ImdbCode:     s.ImdbCode,
			WikiEn:       s.WikiEn,
			WikiCz:       s.WikiCz,
			Picture:      s.Picture,
			Note:         s.Note,
			Genres:       ToDomains(Genre, s.Genres),
		}
	},
}

// Season maps seasons. Episodes are not part of the entity.
var Season Mapper[*entity.Season, *domain.Season] = funcs[*entity.Season, *domain.Season]{
	toEntity: func(s *domain.Season) *entity.Season {
		return &entity.Season{
			Item:      item(s.Item),
			Number:    s.Number,
			StartYear: s.StartYear,
			EndYear:   s.EndYear,
			Language:  language(s.Language),
			Subtitles: languages(s.Subtitles),
			Note:      s.Note,
		}
	},
	toDomain: func(s *entity.Season) *domain.Season {
		return &domain.Season{
			Item:      domainItem(s.Item),
			Number:    s.Number,
			StartYear: s.StartYear,
			EndYear:   s.EndYear,
			Language:  domain.Language(value(s.Language)),
			Subtitles: domainLanguages(s.Subtitles),
			Note:      s.Note,
		}
	},
}

// Episode maps episodes.
var Episode Mapper[*entity.Episode, *domain.Episode] = funcs[*entity.Episode, *domain.Episode]{
	toEntity: func(e *domain.Episode) *entity.Episode {
		return &entity.Episode{Item: item(e.Item), Number: e.Number, Name: entity.Ptr(e.Name), Length: e.Length, Note: e.Note}
	},
	toDomain: func(e *entity.Episode) *domain.Episode {
		return &domain.Episode{Item: domainItem(e.Item), Number: e.Number, Name: value(e.Name), Length: e.Length, Note: e.Note}
	},
}

// Game maps games. The cheat is not part of the entity.
var Game Mapper[*entity.Game, *domain.Game] = funcs[*entity.Game, *domain.Game]{
	toEntity: func(g *domain.Game) *entity.Game {
		return &entity.Game{
			Item:        item(g.Item),
			Name:        entity.Ptr(g.Name),
			WikiEn:      g.WikiEn,
			WikiCz:      g.WikiCz,
			MediaCount:  g.MediaCount,
			Crack:       g.Crack,
			SerialKey:   g.SerialKey,
			Patch:       g.Patch,
			Trainer:     g.Trainer,
			TrainerData: g.TrainerData,
			Editor:      g.Editor,
			Saves:       g.Saves,
			OtherData:   g.OtherData,
			Note:        g.Note,
		}
	},
	toDomain: func(g *entity.Game) *domain.Game {
		return &domain.Game{
			Item:        domainItem(g.Item),
			Name:        value(g.Name),
			WikiEn:      g.WikiEn,
			WikiCz:      g.WikiCz,
			MediaCount:  g.MediaCount,
			Crack:       g.Crack,
			SerialKey:   g.SerialKey,
			Patch:       g.Patch,
			Trainer:     g.Trainer,
			TrainerData: g.TrainerData,
			Editor:      g.Editor,
			Saves:       g.Saves,
			OtherData:   g.OtherData,
			Note:        g.Note,
		}
	},
}

// Cheat maps cheats with their data.
var Cheat Mapper[*entity.Cheat, *domain.Cheat] = funcs[*entity.Cheat, *domain.Cheat]{
	toEntity: func(c *domain.Cheat) *entity.Cheat {
		data := make([]*entity.CheatData, 0, len(c.Data))
		for _, d := range c.Data {
			data = append(data, &entity.CheatData{ID: id(d.ID), Action: entity.Ptr(d.Action), Description: entity.Ptr(d.Description)})
		}
		return &entity.Cheat{Item: item(c.Item), GameSetting: c.GameSetting, CheatSetting: c.CheatSetting, Data: data}
	},
	toDomain: func(c *entity.Cheat) *domain.Cheat {
		cheat := &domain.Cheat{Item: domainItem(c.Item), GameSetting: c.GameSetting, CheatSetting: c.CheatSetting}
		for i, d := range c.Data {
			cheat.Data = append(cheat.Data, &domain.CheatData{
				Item:        domain.Item{ID: value(d.ID), Position: i},
				CheatID:     cheat.ID,
				Action:      value(d.Action),
				Description: value(d.Description),
			})
		}
		return cheat
	},
}

// Music maps music. Songs are not part of the entity.
var Music Mapper[*entity.Music, *domain.Music] = funcs[*entity.Music, *domain.Music]{
	toEntity: func(m *domain.Music) *entity.Music {
		return &entity.Music{Item: item(m.Item), Name: entity.Ptr(m.Name), WikiEn: m.WikiEn, WikiCz: m.WikiCz, MediaCount: m.MediaCount, Note: m.Note}
	},
	toDomain: func(m *entity.Music) *domain.Music {
		return &domain.Music{Item: domainItem(m.Item), Name: value(m.Name), WikiEn: m.WikiEn, WikiCz: m.WikiCz, MediaCount: m.MediaCount, Note: m.Note}
	},
}

// Song maps songs.
var Song Mapper[*entity.Song, *domain.Song] = funcs[*entity.Song, *domain.Song]{
	toEntity: func(s *domain.Song) *entity.Song {
		return &entity.Song{Item: item(s.Item), Name: entity.Ptr(s.Name), Length: s.Length, Note: s.Note}
	},
	toDomain: func(s *entity.Song) *domain.Song {
		return &domain.Song{Item: domainItem(s.Item), Name: value(s.Name), Length: s.Length, Note: s.Note}
	},
}

// Program maps programs.
var Program Mapper[*entity.Program, *domain.Program] = funcs[*entity.Program, *domain.Program]{
	toEntity: func(p *domain.Program) *entity.Program {
		return &entity.Program{
			Item:       item(p.Item),
			Name:       entity.Ptr(p.Name),
			WikiEn:     p.WikiEn,
			WikiCz:     p.WikiCz,
			MediaCount: p.MediaCount,
			Crack:      p.Crack,
			SerialKey:  p.SerialKey,
			OtherData:  p.OtherData,
			Note:       p.Note,
		}
	},
	toDomain: func(p *entity.Program) *domain.Program {
		return &domain.Program{
			Item:       domainItem(p.Item),
			Name:       value(p.Name),
			WikiEn:     p.WikiEn,
			WikiCz:     p.WikiCz,
			MediaCount: p.MediaCount,
			Crack:      p.Crack,
			SerialKey:  p.SerialKey,
			OtherData:  p.OtherData,
			Note:       p.Note,
		}
	},
}

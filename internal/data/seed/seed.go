package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/yungbote/kotoba-backend/internal/data/repos"
	"github.com/yungbote/kotoba-backend/internal/domain"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type groupsFile struct {
	Groups []struct {
		Name string `json:"name"`
	} `json:"groups"`
}

type wordsFile struct {
	Words []struct {
		Japanese string   `json:"japanese"`
		Romaji   string   `json:"romaji"`
		English  string   `json:"english"`
		Groups   []string `json:"groups"`
	} `json:"words"`
}

type activitiesFile struct {
	Activities []struct {
		Name         string `json:"name"`
		ThumbnailURL string `json:"thumbnail_url"`
		Description  string `json:"description"`
	} `json:"activities"`
}

type Loader struct {
	db         *gorm.DB
	log        *logger.Logger
	words      repos.WordRepo
	groups     repos.GroupRepo
	wordGroups repos.WordGroupRepo
	activities repos.StudyActivityRepo
}

func NewLoader(
	db *gorm.DB,
	baseLog *logger.Logger,
	words repos.WordRepo,
	groups repos.GroupRepo,
	wordGroups repos.WordGroupRepo,
	activities repos.StudyActivityRepo,
) *Loader {
	return &Loader{
		db:         db,
		log:        baseLog.With("service", "SeedLoader"),
		words:      words,
		groups:     groups,
		wordGroups: wordGroups,
		activities: activities,
	}
}

// Load reads groups.json, words.json and study_activities.json from dir and
// inserts them in one transaction. Word rows reference their groups by name.
func (l *Loader) Load(ctx context.Context, dir string) error {
	var gf groupsFile
	if err := readJSON(filepath.Join(dir, "groups.json"), &gf); err != nil {
		return err
	}
	var wf wordsFile
	if err := readJSON(filepath.Join(dir, "words.json"), &wf); err != nil {
		return err
	}
	var af activitiesFile
	if err := readJSON(filepath.Join(dir, "study_activities.json"), &af); err != nil {
		return err
	}

	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		groupsByName := make(map[string]*domain.Group, len(gf.Groups))
		for _, g := range gf.Groups {
			created, err := l.groups.Create(ctx, tx, []*domain.Group{{Name: g.Name}})
			if err != nil {
				return fmt.Errorf("seed group %q: %w", g.Name, err)
			}
			groupsByName[g.Name] = created[0]
		}

		for _, w := range wf.Words {
			created, err := l.words.Create(ctx, tx, []*domain.Word{{
				Japanese: w.Japanese,
				Romaji:   w.Romaji,
				English:  w.English,
			}})
			if err != nil {
				return fmt.Errorf("seed word %q: %w", w.Japanese, err)
			}
			word := created[0]

			links := make([]*domain.WordGroup, 0, len(w.Groups))
			for _, name := range w.Groups {
				group, ok := groupsByName[name]
				if !ok {
					return fmt.Errorf("seed word %q references unknown group %q", w.Japanese, name)
				}
				links = append(links, &domain.WordGroup{WordID: word.ID, GroupID: group.ID})
			}
			if _, err := l.wordGroups.Create(ctx, tx, links); err != nil {
				return fmt.Errorf("seed word %q links: %w", w.Japanese, err)
			}
		}

		for _, a := range af.Activities {
			if _, err := l.activities.Create(ctx, tx, []*domain.StudyActivity{{
				Name:         a.Name,
				ThumbnailURL: a.ThumbnailURL,
				Description:  a.Description,
			}}); err != nil {
				return fmt.Errorf("seed activity %q: %w", a.Name, err)
			}
		}

		l.log.Info("Seed data loaded",
			"groups", len(gf.Groups),
			"words", len(wf.Words),
			"activities", len(af.Activities),
		)
		return nil
	})
}

// LoadIfEmpty seeds only when the words table is empty, so restarts do not
// duplicate data.
func (l *Loader) LoadIfEmpty(ctx context.Context, dir string) error {
	count, err := l.words.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		l.log.Debug("Store already populated, skipping seed", "words", count)
		return nil
	}
	return l.Load(ctx, dir)
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse seed file %s: %w", filepath.Base(path), err)
	}
	return nil
}

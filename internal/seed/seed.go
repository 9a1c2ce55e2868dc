// Package seed loads a small demo board. Seeding wipes all columns, cards and
// tags first.
package seed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

type demoCard struct {
	column      int
	title       string
	description string
	tags        []string
	archivedAt  *time.Time
}

var demoColumns = []struct {
	name string
	done bool
}{
	{"To Do", false},
	{"In Progress", false},
	{"Done", true},
}

var demoTags = []struct {
	key, name, color string
}{
	{"high", "High Priority", "red"},
	{"low", "Low Priority", "green"},
	{"design", "Design", "blue"},
	{"dev", "Development", "amber"},
	{"refactor", "Refactoring", "purple"},
	{"ops", "Operations", "slate"},
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var demoCards = []demoCard{
	{0, "Design System Update", "Update the design system with new components and tokens.", []string{"high", "design"}, nil},
	{0, "User Research Interviews", "Conduct user research interviews for the new feature.", []string{"low"}, nil},
	{1, "API Integration", "Integrate the new API endpoints with the frontend.", []string{"dev"}, nil},
	{1, "Component Library Cleanup", "Clean up and document the component library.", []string{"refactor"}, nil},
	{2, "Setup AWS Pipeline", "Set up the CI/CD pipeline on AWS.", []string{"ops"}, nil},
	{0, "Design System Refresh", "Refresh the design system.", []string{"design", "high"}, day(2023, time.October, 12)},
	{1, "API Documentation Draft", "Draft API documentation.", []string{"dev"}, day(2023, time.October, 10)},
	{2, "Q3 Performance Analysis", "Analyze Q3 performance metrics.", []string{"ops"}, day(2023, time.October, 8)},
}

// Summary counts what Run wrote.
type Summary struct {
	Columns  int
	Tags     int
	Active   int
	Archived int
}

// Run replaces the board content with the demo data in one transaction.
func Run(ctx context.Context, store *repository.Store, log *slog.Logger) (*Summary, error) {
	sum := &Summary{}
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Reset(ctx); err != nil {
			return fmt.Errorf("clear board: %w", err)
		}

		columnIDs := make([]uuid.UUID, len(demoColumns))
		for i, c := range demoColumns {
			column := &model.Column{Name: c.name, Position: i, IsDoneColumn: c.done}
			if err := tx.Columns.Create(ctx, column); err != nil {
				return fmt.Errorf("create column %q: %w", c.name, err)
			}
			columnIDs[i] = column.ID
			sum.Columns++
		}

		tagIDs := make(map[string]uuid.UUID, len(demoTags))
		for _, t := range demoTags {
			tag := &model.Tag{Name: t.name, Color: t.color}
			if err := tx.Tags.Create(ctx, tag); err != nil {
				return fmt.Errorf("create tag %q: %w", t.name, err)
			}
			tagIDs[t.key] = tag.ID
			sum.Tags++
		}

		next := make([]int, len(demoColumns))
		for _, d := range demoCards {
			description := d.description
			card := &model.Card{
				ColumnID:    &columnIDs[d.column],
				Title:       d.title,
				Description: &description,
			}
			if d.archivedAt != nil {
				card.IsArchived = true
				card.ArchivedAt = d.archivedAt
				sum.Archived++
			} else {
				card.Position = next[d.column]
				next[d.column]++
				sum.Active++
			}
			if err := tx.Cards.Create(ctx, card); err != nil {
				return fmt.Errorf("create card %q: %w", d.title, err)
			}

			ids := make([]uuid.UUID, 0, len(d.tags))
			for _, key := range d.tags {
				ids = append(ids, tagIDs[key])
			}
			if err := tx.Cards.ReplaceTags(ctx, card.ID, ids); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("board seeded",
		slog.Int("columns", sum.Columns),
		slog.Int("tags", sum.Tags),
		slog.Int("active_cards", sum.Active),
		slog.Int("archived_cards", sum.Archived),
	)
	return sum, nil
}

// Confirm warns that target will be wiped and reads the answer from in.
// Only "yes", in any case, counts as consent.
func Confirm(in io.Reader, out io.Writer, target string) bool {
	fmt.Fprintln(out, "WARNING: this deletes all columns, cards and tags in", target)
	fmt.Fprint(out, "Type 'yes' to continue: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes")
}

package affirmation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

// Affirmations is the fixed pool that generation draws from
var Affirmations = []string{
	"I am worthy of love and respect.",
	"I choose to focus on what I can control.",
	"My challenges help me grow stronger every day.",
	"I am enough just as I am.",
	"I release what no longer serves me.",
	"I trust in my ability to figure things out.",
	"My mind is calm and my heart is at peace.",
	"I am open to the joy and abundance around me.",
	"I forgive myself and set myself free.",
	"I am creating a life I love.",
	"My potential is limitless.",
	"I choose to see the good in myself and others.",
	"I am resilient and can handle whatever comes my way.",
	"I am proud of how far I've come.",
	"I deserve happiness and fulfillment.",
	"I am grateful for this moment and all it offers.",
	"I trust the process of my journey.",
	"I am becoming the person I'm meant to be.",
	"My voice matters and my story is important.",
	"I choose peace over worry, love over fear.",
}

// Emojis decorate a freshly generated affirmation
var Emojis = []string{"💖", "🌟", "✨", "🌻", "🌈", "🌞", "🌸", "💫", "🦋", "🌺"}

// Generated is the outcome of one generation
type Generated struct {
	Affirmation models.Affirmation
	Emoji       string
}

// Generator draws affirmations and keeps the capped history
type Generator struct {
	store storage.Provider
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

func NewGenerator(store storage.Provider) *Generator {
	return &Generator{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetRand replaces the random source, for tests
func (g *Generator) SetRand(rng *rand.Rand) {
	g.rng = rng
}

// SetClock replaces the time source, for tests
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// Pick draws one affirmation and one emoji with independent uniform draws
func (g *Generator) Pick() (string, string) {
	text := Affirmations[g.rng.Intn(len(Affirmations))]
	emoji := Emojis[g.rng.Intn(len(Emojis))]
	return text, emoji
}

// Generate picks an affirmation, prepends it to the history, trims the
// history to the most recent records and persists it.
func (g *Generator) Generate() (Generated, error) {
	history, err := g.History()
	if err != nil {
		return Generated{}, err
	}

	text, emoji := g.Pick()
	record := models.Affirmation{
		ID:        g.newID(),
		Text:      text,
		Timestamp: g.now().UTC(),
	}

	history = append([]models.Affirmation{record}, history...)
	if len(history) > constants.AffirmationHistoryCap {
		history = history[:constants.AffirmationHistoryCap]
	}

	if err := storage.WriteValue(g.store, constants.KeyAffirmations, history); err != nil {
		return Generated{}, fmt.Errorf("failed to save affirmation history: %w", err)
	}
	logger.Debug("Generated affirmation", "id", record.ID, "history", len(history))
	return Generated{Affirmation: record, Emoji: emoji}, nil
}

// History loads the stored records ordered newest first by timestamp
func (g *Generator) History() ([]models.Affirmation, error) {
	res, err := storage.ReadCollection[models.Affirmation](g.store, constants.KeyAffirmations)
	if err != nil {
		return nil, fmt.Errorf("failed to read affirmation history: %w", err)
	}
	history := res.Value
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})
	return history, nil
}

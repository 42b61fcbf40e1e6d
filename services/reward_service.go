package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"herodle/models"
	"herodle/store"
)

// DefaultUserKey identifies the single current player while the game has no
// accounts. Everything downstream is keyed, so handing out real keys later
// (see guest tokens) changes nothing here.
const DefaultUserKey = "default"

// AwardRequest is the validated input of one award event.
type AwardRequest struct {
	CharacterID      string
	GuessTimeSeconds float64
	CluesUsed        int
	WrongAttempts    int
	IsWon            bool
}

// RewardService owns reward issuance: scoring, rarity/variant draws, stat
// assignment, minting, collection appends and achievement detection. Award
// requests for the same user key are serialized so serial numbers and
// edge-triggered achievements cannot race.
type RewardService struct {
	repo   store.CollectionRepository
	oracle DifficultyOracle

	rngMu sync.Mutex
	rng   *rand.Rand

	userMu    sync.Mutex
	userLocks map[string]*sync.Mutex

	perfectMu sync.RWMutex
	perfectAt map[string]time.Time
}

var rewardService *RewardService

// InitRewardService initializes the singleton reward service.
func InitRewardService(repo store.CollectionRepository, oracle DifficultyOracle) {
	rewardService = NewRewardService(repo, oracle)
}

// GetRewardService returns the initialized reward service.
func GetRewardService() *RewardService {
	return rewardService
}

// NewRewardService builds a reward service with a time-seeded RNG. Tests use
// NewRewardServiceWithRand to make draws deterministic.
func NewRewardService(repo store.CollectionRepository, oracle DifficultyOracle) *RewardService {
	seed := uint64(time.Now().UnixNano())
	return NewRewardServiceWithRand(repo, oracle, rand.New(rand.NewPCG(seed, seed>>17)))
}

func NewRewardServiceWithRand(repo store.CollectionRepository, oracle DifficultyOracle, rng *rand.Rand) *RewardService {
	return &RewardService{
		repo:      repo,
		oracle:    oracle,
		rng:       rng,
		userLocks: make(map[string]*sync.Mutex),
		perfectAt: make(map[string]time.Time),
	}
}

// AwardCard runs one reward-issuance transaction for a finished game.
// Validation and the character lookup happen before any mutation, so a
// rejected request never leaves a partial card behind.
func (s *RewardService) AwardCard(ctx context.Context, userKey string, req AwardRequest) (*models.RewardResult, error) {
	if err := validateAwardRequest(req); err != nil {
		return nil, err
	}

	char, ok := GetCharacterByID(req.CharacterID)
	if !ok {
		return nil, ErrCharacterNotFound
	}

	score := CalculatePerformanceScore(req.GuessTimeSeconds, req.CluesUsed, req.WrongAttempts, req.IsWon)

	// The draws are not skipped on a loss; score 0 just lands them in the
	// bottom bucket.
	rarity := s.rollRarity(score)
	variant := s.rollVariant(rarity)

	// Serialize count-then-append per user. Without this, concurrent awards
	// could mint duplicate serials or double-fire threshold achievements.
	lock := s.lockFor(userKey)
	lock.Lock()
	defer lock.Unlock()

	before, err := s.repo.Snapshot(userKey)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}

	priorOfCharacter := 0
	for i := range before {
		if before[i].CharacterID == req.CharacterID {
			priorOfCharacter++
		}
	}
	isFirstTime := priorOfCharacter == 0

	stats := s.assignStats(ctx, char)

	card := models.CardInstance{
		ID:                s.mintCardID(char.ID),
		UserKey:           userKey,
		Position:          len(before),
		CharacterID:       char.ID,
		CharacterName:     char.Name,
		Rarity:            rarity,
		Variant:           variant,
		SerialNumber:      priorOfCharacter + 1,
		MaxSupply:         rarity.MaxSupply(),
		Stats:             stats,
		ImageURL:          char.ImageURL,
		CharacterImageURL: char.CharacterImageURL,
		CreatedAt:         time.Now().UTC(),
	}

	beforeAchievements := EvaluateAchievements(before, s.PerfectGameAt(userKey))

	if err := s.repo.Append(userKey, card); err != nil {
		return nil, fmt.Errorf("appending card: %w", err)
	}

	if score == 100 {
		s.recordPerfectGame(userKey, card.CreatedAt)
	}

	after := append(before, card)
	afterAchievements := EvaluateAchievements(after, s.PerfectGameAt(userKey))

	return &models.RewardResult{
		Card:        card,
		IsFirstTime: isFirstTime,
		Telemetry: models.PlayTelemetry{
			GuessTimeSeconds: req.GuessTimeSeconds,
			CluesUsed:        req.CluesUsed,
			WrongAttempts:    req.WrongAttempts,
			IsWon:            req.IsWon,
		},
		PerformanceScore:     score,
		BonusMultiplier:      score / 100,
		UnlockedAchievements: NewlyUnlocked(beforeAchievements, afterAchievements),
	}, nil
}

// Collection returns the user's cards in unlock order plus the aggregate
// summary over them.
func (s *RewardService) Collection(userKey string) ([]models.CardInstance, models.CollectionSummary, error) {
	cards, err := s.repo.Snapshot(userKey)
	if err != nil {
		return nil, models.CollectionSummary{}, fmt.Errorf("reading collection: %w", err)
	}
	return cards, SummarizeCollection(cards, CharacterCount()), nil
}

// Achievements returns the level-triggered achievement view for a user.
func (s *RewardService) Achievements(userKey string) ([]models.Achievement, error) {
	cards, err := s.repo.Snapshot(userKey)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}
	return EvaluateAchievements(cards, s.PerfectGameAt(userKey)), nil
}

// PerfectGameAt reports when the user first scored a perfect game, or nil.
func (s *RewardService) PerfectGameAt(userKey string) *time.Time {
	s.perfectMu.RLock()
	defer s.perfectMu.RUnlock()
	if t, ok := s.perfectAt[userKey]; ok {
		return &t
	}
	return nil
}

func (s *RewardService) recordPerfectGame(userKey string, at time.Time) {
	s.perfectMu.Lock()
	defer s.perfectMu.Unlock()
	if _, ok := s.perfectAt[userKey]; !ok {
		s.perfectAt[userKey] = at
	}
}

func (s *RewardService) lockFor(userKey string) *sync.Mutex {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	lock, ok := s.userLocks[userKey]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userKey] = lock
	}
	return lock
}

func (s *RewardService) rollRarity(score float64) models.Rarity {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return RollRarity(score, s.rng)
}

func (s *RewardService) rollVariant(rarity models.Rarity) models.Variant {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return RollVariant(rarity, s.rng)
}

// assignStats resolves difficulty from the oracle before taking the RNG
// lock, so a slow oracle call never stalls draws for other users.
func (s *RewardService) assignStats(ctx context.Context, char *models.Character) models.CardStats {
	difficulty := predictDifficulty(ctx, char.Name, s.oracle)

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return buildStats(char, difficulty, s.rng)
}

// mintCardID combines the character, the mint instant and a random suffix so
// ids stay unique even for same-millisecond mints.
func (s *RewardService) mintCardID(characterID string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s-%d-%s", characterID, time.Now().UnixMilli(), suffix)
}

func validateAwardRequest(req AwardRequest) error {
	if strings.TrimSpace(req.CharacterID) == "" {
		return invalidInput("characterId is required")
	}
	if req.GuessTimeSeconds < 0 {
		return invalidInput("guessTime must be non-negative")
	}
	if req.CluesUsed < 0 || req.CluesUsed > 3 {
		return invalidInput("cluesUsed must be between 0 and 3")
	}
	if req.WrongAttempts < 0 {
		return invalidInput("wrongAttempts must be non-negative")
	}
	return nil
}

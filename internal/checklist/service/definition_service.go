package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bouvin87/System-by-Sections/internal/checklist/entity"
	"github.com/bouvin87/System-by-Sections/internal/checklist/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	definitionCachePrefix = "checklist:definition:"
	definitionCacheTTL    = 5 * time.Minute
)

// FormDefinition is everything needed to render and validate one checklist:
// the template, its identification dimensions and the full question tree.
// Dimension slices are populated only when the matching Include* flag is set.
type FormDefinition struct {
	Checklist     entity.Checklist          `json:"checklist"`
	WorkTasks     []entity.WorkTask         `json:"work_tasks"`
	WorkStations  []entity.WorkStation      `json:"work_stations"`
	Shifts        []entity.Shift            `json:"shifts"`
	Categories    []entity.Category         `json:"categories"`
	Questions     []entity.Question         `json:"questions"`
	QuestionLinks []entity.QuestionWorkTask `json:"question_links"`
}

// DefinitionService loads form definitions. Questions and scoping links are
// fetched concurrently per category / per question; a failed item is logged
// and treated as empty so one bad row never blanks the whole form. Results
// are cached in redis for a short TTL.
type DefinitionService struct {
	repos  *repository.Repositories
	rdb    *redis.Client
	logger *zap.Logger
}

func NewDefinitionService(repos *repository.Repositories, rdb *redis.Client, logger *zap.Logger) *DefinitionService {
	return &DefinitionService{repos: repos, rdb: rdb, logger: logger}
}

// ListChecklists returns active checklists in display order.
func (s *DefinitionService) ListChecklists(ctx context.Context) ([]entity.Checklist, error) {
	return s.repos.Checklist.List(ctx)
}

// Load returns the full definition for one checklist.
func (s *DefinitionService) Load(ctx context.Context, checklistID string) (*FormDefinition, error) {
	cacheKey := definitionCachePrefix + checklistID
	if cached := s.readCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	checklist, err := s.repos.Checklist.FindByID(ctx, checklistID)
	if err != nil {
		return nil, err
	}

	def := &FormDefinition{Checklist: *checklist}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		categories, err := s.repos.Category.ListByChecklist(gctx, checklistID)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		def.Categories = categories
		return nil
	})
	if checklist.IncludeWorkTasks {
		g.Go(func() error {
			tasks, err := s.loadWorkTasks(gctx, checklistID)
			if err != nil {
				return fmt.Errorf("load work tasks: %w", err)
			}
			def.WorkTasks = tasks
			return nil
		})
	}
	if checklist.IncludeWorkStations {
		g.Go(func() error {
			stations, err := s.repos.WorkStation.ListAll(gctx)
			if err != nil {
				return fmt.Errorf("load work stations: %w", err)
			}
			def.WorkStations = stations
			return nil
		})
	}
	if checklist.IncludeShifts {
		g.Go(func() error {
			shifts, err := s.repos.Shift.ListAll(gctx)
			if err != nil {
				return fmt.Errorf("load shifts: %w", err)
			}
			def.Shifts = shifts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	def.Questions = s.loadQuestions(ctx, def.Categories)
	def.QuestionLinks = s.loadQuestionLinks(ctx, def.Questions)

	s.writeCache(ctx, cacheKey, def)
	return def, nil
}

// Invalidate drops the cached definition after admin edits.
func (s *DefinitionService) Invalidate(ctx context.Context, checklistID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, definitionCachePrefix+checklistID).Err(); err != nil {
		s.logger.Warn("failed to invalidate definition cache",
			zap.String("checklist_id", checklistID), zap.Error(err))
	}
}

// loadWorkTasks resolves the checklist's work-task candidates. With no link
// rows every task is a candidate.
func (s *DefinitionService) loadWorkTasks(ctx context.Context, checklistID string) ([]entity.WorkTask, error) {
	links, err := s.repos.Checklist.ListWorkTaskLinks(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	all, err := s.repos.WorkTask.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return all, nil
	}
	linked := make(map[string]bool, len(links))
	for _, link := range links {
		linked[link.WorkTaskID] = true
	}
	tasks := make([]entity.WorkTask, 0, len(links))
	for _, task := range all {
		if linked[task.ID] {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// loadQuestions fans out one fetch per category. Results land in an indexed
// slice so category order is preserved regardless of completion order.
func (s *DefinitionService) loadQuestions(ctx context.Context, categories []entity.Category) []entity.Question {
	perCategory := make([][]entity.Question, len(categories))

	var g errgroup.Group
	for i := range categories {
		i := i
		g.Go(func() error {
			questions, err := s.repos.Question.ListByCategory(ctx, categories[i].ID)
			if err != nil {
				s.logger.Warn("failed to load category questions, treating as empty",
					zap.String("category_id", categories[i].ID), zap.Error(err))
				return nil
			}
			perCategory[i] = questions
			return nil
		})
	}
	g.Wait()

	var questions []entity.Question
	for _, qs := range perCategory {
		questions = append(questions, qs...)
	}
	return questions
}

// loadQuestionLinks fans out one fetch per question. A failed fetch leaves the
// question with no links, i.e. visible everywhere.
func (s *DefinitionService) loadQuestionLinks(ctx context.Context, questions []entity.Question) []entity.QuestionWorkTask {
	perQuestion := make([][]entity.QuestionWorkTask, len(questions))

	var g errgroup.Group
	for i := range questions {
		i := i
		g.Go(func() error {
			links, err := s.repos.Question.ListWorkTaskLinks(ctx, questions[i].ID)
			if err != nil {
				s.logger.Warn("failed to load question work-task links, treating as universal",
					zap.String("question_id", questions[i].ID), zap.Error(err))
				return nil
			}
			perQuestion[i] = links
			return nil
		})
	}
	g.Wait()

	var links []entity.QuestionWorkTask
	for _, ls := range perQuestion {
		links = append(links, ls...)
	}
	return links
}

func (s *DefinitionService) readCache(ctx context.Context, key string) *FormDefinition {
	if s.rdb == nil {
		return nil
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("definition cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var def FormDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		s.logger.Warn("definition cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &def
}

func (s *DefinitionService) writeCache(ctx context.Context, key string, def *FormDefinition) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(def)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, definitionCacheTTL).Err(); err != nil {
		s.logger.Warn("definition cache write failed", zap.String("key", key), zap.Error(err))
	}
}

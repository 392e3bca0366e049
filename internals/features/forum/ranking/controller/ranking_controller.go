// file: internals/features/forum/ranking/controller/ranking_controller.go
package controller

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studyoverflow_backend/internals/constants"
	answerModel "studyoverflow_backend/internals/features/forum/answers/model"
	questionDto "studyoverflow_backend/internals/features/forum/questions/dto"
	questionModel "studyoverflow_backend/internals/features/forum/questions/model"
	dto "studyoverflow_backend/internals/features/forum/ranking/dto"
	rankService "studyoverflow_backend/internals/features/forum/ranking/service"
	tagDto "studyoverflow_backend/internals/features/forum/tags/dto"
	tagModel "studyoverflow_backend/internals/features/forum/tags/model"
	voteService "studyoverflow_backend/internals/features/forum/votes/service"
	profileModel "studyoverflow_backend/internals/features/users/profile/model"
	helper "studyoverflow_backend/internals/helpers"
)

const (
	hotWindow      = 7 * 24 * time.Hour
	hotCap         = 100
	hotCacheTTL    = 5 * time.Minute
	searchFetchCap = 100
)

// hotSnapshot caches the fully built hot list. Refreshes race freely,
// last write wins.
type hotSnapshot struct {
	mu        sync.RWMutex
	items     []dto.HotQuestionResponse
	expiresAt time.Time
}

func (s *hotSnapshot) get(now time.Time) ([]dto.HotQuestionResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.items == nil || now.After(s.expiresAt) {
		return nil, false
	}
	return s.items, true
}

func (s *hotSnapshot) set(items []dto.HotQuestionResponse, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.expiresAt = now.Add(hotCacheTTL)
}

type RankingController struct {
	DB  *gorm.DB
	hot hotSnapshot
}

func NewRankingController(db *gorm.DB) *RankingController {
	return &RankingController{DB: db}
}

/* ==============================
   Shared loading
============================== */

type loadedQuestion struct {
	model   *questionModel.QuestionModel
	summary questionDto.QuestionSummaryResponse
}

func (ctl *RankingController) loadApproved(scope func(*gorm.DB) *gorm.DB) ([]loadedQuestion, error) {
	query := ctl.DB.
		Preload("Author").
		Preload("Tags").
		Where("question_status = ?", constants.StatusApproved)
	if scope != nil {
		query = scope(query)
	}

	var questions []questionModel.QuestionModel
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(questions))
	for i := range questions {
		ids = append(ids, questions[i].QuestionID)
	}

	scores, err := voteService.ScoresForQuestions(ctl.DB, ids)
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) > 0 {
		var rows []struct {
			QuestionID uuid.UUID `gorm:"column:question_id"`
			Count      int64     `gorm:"column:count"`
		}
		err := ctl.DB.Model(&answerModel.AnswerModel{}).
			Select("answer_question_id AS question_id, COUNT(*) AS count").
			Where("answer_question_id IN ?", ids).
			Group("answer_question_id").
			Find(&rows).Error
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			counts[r.QuestionID] = r.Count
		}
	}

	out := make([]loadedQuestion, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		out = append(out, loadedQuestion{
			model:   q,
			summary: questionDto.FromQuestionModel(q, scores[q.QuestionID], counts[q.QuestionID]),
		})
	}
	return out, nil
}

/* ==============================
   Handlers
============================== */

// GET /questions/hot?limit= returns the last 7 days ranked by hot score,
// cached.
func (ctl *RankingController) HotQuestions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", hotCap)
	if limit < 1 || limit > hotCap {
		limit = hotCap
	}

	now := time.Now()
	if items, ok := ctl.hot.get(now); ok {
		return helper.Success(c, "OK", capHot(items, limit))
	}

	loaded, err := ctl.loadApproved(func(q *gorm.DB) *gorm.DB {
		return q.Where("question_created_at >= ?", now.Add(-hotWindow))
	})
	if err != nil {
		log.Printf("[ERROR] load hot questions: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch hot questions")
	}

	scored := make([]rankService.ScoredQuestion, 0, len(loaded))
	for _, lq := range loaded {
		scored = append(scored, rankService.ScoredQuestion{
			QuestionID:  lq.model.QuestionID.String(),
			Views:       lq.model.QuestionViews,
			VoteScore:   lq.summary.VoteScore,
			AnswerCount: int(lq.summary.AnswerCount),
			CreatedAt:   lq.model.QuestionCreatedAt,
		})
	}
	ranked := rankService.RankByHotScore(scored, now)
	if len(ranked) > hotCap {
		ranked = ranked[:hotCap]
	}

	byID := make(map[string]questionDto.QuestionSummaryResponse, len(loaded))
	for _, lq := range loaded {
		byID[lq.model.QuestionID.String()] = lq.summary
	}

	items := make([]dto.HotQuestionResponse, 0, len(ranked))
	for _, sq := range ranked {
		items = append(items, dto.HotQuestionResponse{
			QuestionSummaryResponse: byID[sq.QuestionID],
			HotScore:                sq.Score,
		})
	}

	ctl.hot.set(items, now)
	return helper.Success(c, "OK", capHot(items, limit))
}

func capHot(items []dto.HotQuestionResponse, limit int) []dto.HotQuestionResponse {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// GET /search?q= returns relevance-ranked approved questions.
func (ctl *RankingController) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Search query is required")
	}

	loaded, err := ctl.loadApproved(func(q *gorm.DB) *gorm.DB {
		return q.Order("question_created_at DESC").Limit(searchFetchCap)
	})
	if err != nil {
		log.Printf("[ERROR] load questions for search: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Search failed")
	}

	results := make([]dto.SearchResultResponse, 0)
	for _, lq := range loaded {
		tags := make([]string, 0, len(lq.model.Tags))
		for _, t := range lq.model.Tags {
			tags = append(tags, t.TagName)
		}
		rel := rankService.RelevanceScore(lq.model.QuestionTitle, lq.model.QuestionContent, tags, query)
		if rel <= 0 {
			continue
		}
		results = append(results, dto.SearchResultResponse{
			QuestionSummaryResponse: lq.summary,
			Relevance:               rel,
		})
	}

	// stable so equally relevant questions keep their fetch order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	return helper.Success(c, "OK", results)
}

// GET /stats returns platform totals plus the six busiest tags.
func (ctl *RankingController) Stats(c *fiber.Ctx) error {
	var resp dto.StatsResponse

	err := ctl.DB.Model(&questionModel.QuestionModel{}).
		Where("question_status = ?", constants.StatusApproved).
		Count(&resp.TotalQuestions).Error
	if err == nil {
		err = ctl.DB.Model(&answerModel.AnswerModel{}).
			Where("answer_status = ?", constants.StatusApproved).
			Count(&resp.TotalAnswers).Error
	}
	if err == nil {
		err = ctl.DB.Model(&profileModel.ProfileModel{}).
			Where("profile_pseudonym IS NOT NULL").
			Count(&resp.TotalUsers).Error
	}
	if err == nil {
		err = ctl.DB.Model(&tagModel.TagModel{}).Count(&resp.TotalTags).Error
	}
	if err != nil {
		log.Printf("[ERROR] load stats: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}

	var rows []struct {
		tagModel.TagModel
		QuestionCount int64 `gorm:"column:question_count"`
	}
	err = ctl.DB.Model(&tagModel.TagModel{}).
		Select("tags.*, COUNT(questions.question_id) AS question_count").
		Joins("LEFT JOIN question_tags ON question_tags.tag_id = tags.tag_id").
		Joins("LEFT JOIN questions ON questions.question_id = question_tags.question_id AND questions.question_status = ?", constants.StatusApproved).
		Group("tags.tag_id").
		Order("question_count DESC, tags.tag_name ASC").
		Limit(6).
		Find(&rows).Error
	if err != nil {
		log.Printf("[ERROR] load featured tags: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch stats")
	}
	for _, r := range rows {
		resp.FeaturedTags = append(resp.FeaturedTags, tagDto.TagWithCountResponse{
			TagID:         r.TagID,
			TagName:       r.TagName,
			QuestionCount: r.QuestionCount,
			TagCreatedAt:  r.TagCreatedAt,
		})
	}

	return helper.Success(c, "OK", resp)
}

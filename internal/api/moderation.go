package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/mock"
)

type moderationCategories struct {
	Harassment            bool `json:"harassment"`
	HarassmentThreatening bool `json:"harassment/threatening"`
	Hate                  bool `json:"hate"`
	HateThreatening       bool `json:"hate/threatening"`
	SelfHarm              bool `json:"self-harm"`
	SelfHarmIntent        bool `json:"self-harm/intent"`
	SelfHarmInstructions  bool `json:"self-harm/instructions"`
	Sexual                bool `json:"sexual"`
	SexualMinors          bool `json:"sexual/minors"`
	Violence              bool `json:"violence"`
	ViolenceGraphic       bool `json:"violence/graphic"`
}

type moderationScores struct {
	Harassment            float64 `json:"harassment"`
	HarassmentThreatening float64 `json:"harassment/threatening"`
	Hate                  float64 `json:"hate"`
	HateThreatening       float64 `json:"hate/threatening"`
	SelfHarm              float64 `json:"self-harm"`
	SelfHarmIntent        float64 `json:"self-harm/intent"`
	SelfHarmInstructions  float64 `json:"self-harm/instructions"`
	Sexual                float64 `json:"sexual"`
	SexualMinors          float64 `json:"sexual/minors"`
	Violence              float64 `json:"violence"`
	ViolenceGraphic       float64 `json:"violence/graphic"`
}

type moderationResult struct {
	Flagged        bool                 `json:"flagged"`
	Categories     moderationCategories `json:"categories"`
	CategoryScores moderationScores     `json:"category_scores"`
}

type moderationRequest struct {
	Input any `json:"input"`
}

func (s *Server) createModeration(c *gin.Context) {
	var req moderationRequest
	_ = c.ShouldBindJSON(&req)

	inputs := []any{req.Input}
	if arr, ok := req.Input.([]any); ok {
		inputs = arr
	}

	results := make([]moderationResult, 0, len(inputs))
	for range inputs {
		results = append(results, moderationResult{
			Flagged: mock.RandFloat64() > 0.7,
			CategoryScores: moderationScores{
				Harassment:            mock.RandFloat64(),
				HarassmentThreatening: mock.RandFloat64(),
				Hate:                  mock.RandFloat64(),
				HateThreatening:       mock.RandFloat64(),
				SelfHarm:              mock.RandFloat64(),
				SelfHarmIntent:        mock.RandFloat64(),
				SelfHarmInstructions:  mock.RandFloat64(),
				Sexual:                mock.RandFloat64(),
				SexualMinors:          mock.RandFloat64(),
				Violence:              mock.RandFloat64(),
				ViolenceGraphic:       mock.RandFloat64(),
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      mock.NewID("modr-"),
		"model":   "text-moderation-latest",
		"results": results,
	})
}

package stylistControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultGeminiModel = "gemini-2.5-flash"

type StyleAdviceRequest struct {
	Query string `json:"query" binding:"required"`
}

type DescribeProductRequest struct {
	Name string   `json:"name" binding:"required"`
	Tags []string `json:"tags"`
}

type Recommendation struct {
	ProductID string `json:"productId"`
	Reason    string `json:"reason"`
}

type adviceResult struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig map[string]interface{} `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func getGeminiConfig() (apiKey, endpoint string, err error) {
	apiKey = os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", "", fmt.Errorf("gemini configuration missing")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	endpoint = os.Getenv("GEMINI_API_URL")
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model)
	}
	return apiKey, endpoint, nil
}

// generateContent calls the Gemini generateContent API with one text prompt
// and returns the first candidate's text.
func generateContent(prompt string, generationConfig map[string]interface{}) (string, error) {
	apiKey, endpoint, err := getGeminiConfig()
	if err != nil {
		return "", err
	}

	reqBody := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig,
	}

	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach gemini: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %v", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// StyleAdviceHandler asks the stylist model to pick 1–3 products from the
// live catalog for the shopper's request. Any failure degrades to an empty
// recommendation list; the chat widget treats that as "no suggestions".
func StyleAdviceHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StyleAdviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var products []models.Product
		if err := db.Where("is_visible = ?", true).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}

		catalog, _ := json.Marshal(products)
		prompt := fmt.Sprintf(`You are a high-end jewelry stylist for "NRK Aura Luxury Bangles".
The user is asking: %q.

Here is our live catalog: %s.

Please recommend 1 to 3 products that best fit the user's request.
Explain why you chose each one in a sophisticated, sales-oriented tone suitable for a luxury brand.
The price is in Indian Rupees (INR).

Return JSON only.`, req.Query, catalog)

		generationConfig := map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"recommendations": map[string]interface{}{
						"type": "ARRAY",
						"items": map[string]interface{}{
							"type": "OBJECT",
							"properties": map[string]interface{}{
								"productId": map[string]interface{}{"type": "STRING"},
								"reason":    map[string]interface{}{"type": "STRING"},
							},
						},
					},
				},
			},
		}

		var result adviceResult
		text, err := generateContent(prompt, generationConfig)
		if err == nil {
			err = json.Unmarshal([]byte(text), &result)
		}
		if err != nil {
			log.Printf("❌ Gemini API Error: %v", err)
		}
		if result.Recommendations == nil {
			result.Recommendations = []Recommendation{}
		}
		c.JSON(http.StatusOK, result)
	}
}

// DescribeProductHandler drafts a short product description for the admin
// catalog editor.
func DescribeProductHandler(c *gin.Context) {
	var req DescribeProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prompt := fmt.Sprintf(
		"Write a short, poetic, and luxurious 2-sentence product description for a jewelry piece named %q from NRK Aura. Style tags: %v.",
		req.Name, req.Tags)

	text, err := generateContent(prompt, nil)
	if err != nil {
		log.Printf("❌ Gemini API Error: %v", err)
		c.JSON(http.StatusOK, gin.H{"description": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": text})
}

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log"
	"net/http"
)

// Seeds a running API with two users, their challenges, daily logs, and
// one shared challenge. Useful for local demos against a fresh database.

type client struct {
	baseURL string
	http    *http.Client
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	flag.Parse()

	c := client{baseURL: *baseURL + "/api/v1", http: http.DefaultClient}

	c.registerUser("user1", "user1@example.com", "password1")
	user2ID := c.registerUser("user2", "user2@example.com", "password2")

	token1 := c.login("user1", "password1")
	token2 := c.login("user2", "password2")

	smoking := c.createChallenge(token1, "Quit Smoking", "Challenge to quit smoking for a month.")
	exercise := c.createChallenge(token1, "Daily Exercise", "Challenge to exercise every day.")
	reading := c.createChallenge(token2, "Read Books", "Challenge to read a book per week.")
	eating := c.createChallenge(token2, "Healthy Eating", "Challenge to eat healthy meals daily.")

	c.createDailyLog(token1, smoking, "2024-11-01", true)
	c.createDailyLog(token1, smoking, "2024-11-02", false)
	c.createDailyLog(token1, exercise, "2024-11-01", true)
	c.createDailyLog(token1, exercise, "2024-11-02", true)

	c.createDailyLog(token2, reading, "2024-11-01", true)
	c.createDailyLog(token2, eating, "2024-11-01", false)

	c.shareChallenge(token1, smoking, user2ID)

	log.Println("seed complete")
}

func (c client) registerUser(username, email, password string) int64 {
	var resp struct {
		ID int64 `json:"id"`
	}
	c.post("/users", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &resp)
	log.Printf("registered %s (id=%d)", username, resp.ID)
	return resp.ID
}

func (c client) login(username, password string) string {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	c.post("/users/token", "", map[string]string{
		"username": username,
		"password": password,
	}, &resp)
	log.Printf("logged in %s", username)
	return resp.AccessToken
}

func (c client) createChallenge(token, name, description string) int64 {
	var resp struct {
		ID int64 `json:"id"`
	}
	c.post("/challenges", token, map[string]string{
		"name":        name,
		"description": description,
	}, &resp)
	log.Printf("challenge %q created (id=%d)", name, resp.ID)
	return resp.ID
}

func (c client) createDailyLog(token string, challengeID int64, logDate string, completed bool) {
	c.post("/daily-logs", token, map[string]any{
		"challenge_id": challengeID,
		"log_date":     logDate,
		"completed":    completed,
	}, nil)
	log.Printf("daily log for challenge %d on %s created", challengeID, logDate)
}

func (c client) shareChallenge(token string, challengeID, sharedUserID int64) {
	c.post("/shared-challenges", token, map[string]any{
		"challenge_id":   challengeID,
		"shared_user_id": sharedUserID,
	}, nil)
	log.Printf("challenge %d shared with user %d", challengeID, sharedUserID)
}

func (c client) post(path, token string, body any, out any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("marshal %s request: %v", path, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		log.Fatalf("build %s request: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Fatalf("POST %s: unexpected status %s", path, resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode %s response: %v", path, err)
		}
	}
}

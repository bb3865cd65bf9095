package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"congreso/db"
	"congreso/globals"
	"congreso/middleware"
	"congreso/models"
	"congreso/rdx"
	"congreso/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 15 * time.Minute
)

func generateAccessToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Username,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func generateRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func getBearerToken(r *http.Request) string {
	tok := r.Header.Get("Authorization")
	if len(tok) >= 8 && tok[:7] == "Bearer " {
		return tok[7:]
	}
	return ""
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": input.Username}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate refresh token")
		return
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": storedUser.UserID},
		bson.M{
			"$set": bson.M{
				"refresh_token":  hashToken(refreshToken),
				"refresh_expiry": time.Now().Add(refreshTokenTTL),
				"last_login":     time.Now(),
			},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store refresh token")
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{
		"token":        tokenString,
		"refreshToken": refreshToken,
		"userid":       storedUser.UserID,
	}, "Login successful", nil)
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	err := db.UserCollection.FindOne(context.TODO(), bson.M{"username": input.Username}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "User already exists")
		return
	} else if err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Hash error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	user := models.User{
		UserID:       "u" + utils.GenerateRandomString(10),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         []string{"user"},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(context.TODO(), user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.SendResponse(w, http.StatusCreated, nil, "Registration successful", nil)
}

func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := getBearerToken(r)
	if tokenString == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing token")
		return
	}

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	if _, err := rdx.RdxHdel("tokki", claims.UserID); err != nil {
		log.Printf("Redis token remove failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "User logged out", nil)
}

func refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		UserID       string `json:"userid"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.UserID == "" || input.RefreshToken == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": input.UserID}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unknown user")
		return
	}

	if storedUser.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(storedUser.RefreshExpiry) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Refresh token invalid or expired")
		return
	}

	tokenString, err := generateAccessToken(storedUser)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.RdxHset("tokki", storedUser.UserID, tokenString); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"token": tokenString}, "Token refreshed", nil)
}

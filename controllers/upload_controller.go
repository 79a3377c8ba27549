package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kenya-ni-yetu/api-go/config"
	"github.com/kenya-ni-yetu/api-go/utils"
)

// UploadController issues presigned S3 PUT URLs for report evidence files.
// Files never pass through the API process.
type UploadController struct {
	S3Client *s3.Client
	Settings *config.Settings
}

func NewUploadController() *UploadController {
	settings := config.Get()

	s3Client := s3.New(s3.Options{
		Region: settings.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			settings.AWSAccessKeyID,
			settings.AWSSecretAccessKey,
			"",
		),
	})

	return &UploadController{
		S3Client: s3Client,
		Settings: settings,
	}
}

type EvidenceUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type EvidenceUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func (uc *UploadController) allowedExtension(fileName string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	for _, allowed := range uc.Settings.AllowedExtensionsList() {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (uc *UploadController) GetEvidenceUploadURL(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var req EvidenceUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !uc.allowedExtension(req.FileName) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed", "success": false})
		return
	}

	if req.FileSize > uc.Settings.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   fmt.Sprintf("File exceeds maximum size of %d bytes", uc.Settings.MaxUploadSize),
			"success": false,
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	key := fmt.Sprintf("reports/evidence/%s/%s%s", user.UserID, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(uc.S3Client)
	presigned, err := presignClient.PresignPutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:        aws.String(uc.Settings.S3BucketName),
		Key:           aws.String(key),
		ContentType:   aws.String(req.ContentType),
		ContentLength: aws.Int64(req.FileSize),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": EvidenceUploadResponse{
			UploadURL: presigned.URL,
			FileURL:   fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", uc.Settings.S3BucketName, uc.Settings.AWSRegion, key),
			Key:       key,
			ExpiresIn: int((15 * time.Minute).Seconds()),
		},
	})
}

package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/inference"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
	"github.com/legalconnect/legalconnect-api/statute"
)

// maxDocumentSize caps uploads at 10MB, matching the frontend limit
const maxDocumentSize = 10 << 20

// Document exported for testing purposes
type Document struct {
	DB    databases.DocumentDatabase
	Hub   *relay.Hub
	Model *inference.Client
}

// UploadDocumentHandler stores a document in Cloudinary and records it
func (d Document) UploadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		config.ErrorStatus("file too large or malformed form", http.StatusBadRequest, w, err)
		return
	}

	ownerID := r.FormValue("ownerId")
	if ownerID == "" {
		config.ErrorStatus("missing owner", http.StatusBadRequest, w, fmt.Errorf("ownerId is required"))
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		config.ErrorStatus("no document uploaded", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	cld, err := cloudinary.New()
	if err != nil {
		config.ErrorStatus("storage unavailable", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	uploadResp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       "legalconnect/documents",
		ResourceType: "auto",
	})
	if err != nil {
		config.ErrorStatus("failed to upload document", http.StatusInternalServerError, w, err)
		return
	}

	newDocument := models.Document{
		ID: primitive.NewObjectID(),
		Details: models.DocumentDetails{
			Name:       header.Filename,
			URL:        uploadResp.SecureURL,
			PublicID:   uploadResp.PublicID,
			Type:       header.Header.Get("Content-Type"),
			Size:       header.Size,
			OwnerID:    ownerID,
			SharedWith: []string{},
			UploadedAt: primitive.NewDateTimeFromTime(time.Now()),
		},
	}

	if _, err := d.DB.InsertOne(ctx, newDocument); err != nil {
		config.ErrorStatus("failed to save document", http.StatusInternalServerError, w, err)
		return
	}

	if d.Hub != nil {
		d.Hub.BroadcastGlobal(relay.Event{
			Type: relay.EventDocumentUploaded,
			Data: newDocument,
		}, "")
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newDocument)
}

// DocumentByIDHandler returns a document by its ID
func (d Document) DocumentByIDHandler(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	dID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		config.ErrorStatus("invalid document ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	document, err := d.DB.FindOne(ctx, bson.M{"_id": dID})
	if err != nil {
		config.ErrorStatus("failed to find document", http.StatusNotFound, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(document)
}

// DocumentsByUserIDHandler returns documents the user owns or can see
func (d Document) DocumentsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	filter := bson.M{"$or": []bson.M{
		{"document.ownerId": userID},
		{"document.sharedWith": userID},
	}}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get documents", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Document{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// documentAnalysisResponse carries either model output or a local statute
// match for a stored document, plus the document's identity.
type documentAnalysisResponse struct {
	DocumentID string          `json:"documentId"`
	Name       string          `json:"name"`
	Source     string          `json:"source"`
	Analysis   string          `json:"analysis,omitempty"`
	Match      *statute.Result `json:"match,omitempty"`
}

// AnalyzeDocumentHandler summarizes a stored document's extracted text. The
// hosted model is tried first; any failure falls back to the local IPC table
// so a model outage never surfaces to the client.
func (d Document) AnalyzeDocumentHandler(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	dID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		config.ErrorStatus("invalid document ID", http.StatusBadRequest, w, err)
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		config.ErrorStatus("missing document text", http.StatusBadRequest, w, fmt.Errorf("text is required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	document, err := d.DB.FindOne(ctx, bson.M{"_id": dID})
	if err != nil {
		config.ErrorStatus("failed to find document", http.StatusNotFound, w, err)
		return
	}

	resp := documentAnalysisResponse{
		DocumentID: documentID,
		Name:       document.Details.Name,
	}

	if d.Model != nil {
		summary, err := d.Model.SummarizeDocument(r.Context(), body.Text)
		if err == nil {
			resp.Source = "model"
			resp.Analysis = summary
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(resp)
			return
		}
		zap.S().Warnw("document summary failed, falling back to statute table", "documentId", documentID, "error", err)
	}

	result := statute.Match(body.Text)
	resp.Source = "statute"
	resp.Match = &result
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ShareDocumentHandler grants other users access to a document
func (d Document) ShareDocumentHandler(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	var body struct {
		UserIDs         []string `json:"userIds"`
		ConversationIDs []string `json:"conversationIds,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(body.UserIDs) == 0 && len(body.ConversationIDs) == 0 {
		config.ErrorStatus("nothing to share", http.StatusBadRequest, w, fmt.Errorf("userIds or conversationIds required"))
		return
	}

	dID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		config.ErrorStatus("invalid document ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	update := bson.M{"$addToSet": bson.M{
		"document.sharedWith":      bson.M{"$each": body.UserIDs},
		"document.conversationIds": bson.M{"$each": body.ConversationIDs},
	}}
	if err := d.DB.UpdateOne(ctx, bson.M{"_id": dID}, update); err != nil {
		config.ErrorStatus("failed to share document", http.StatusInternalServerError, w, err)
		return
	}

	if d.Hub != nil {
		d.Hub.BroadcastGlobal(relay.Event{
			Type: relay.EventDocumentShared,
			Data: map[string]interface{}{
				"documentId": documentID,
				"userIds":    body.UserIDs,
			},
		}, "")
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "document shared successfully"}`))
}

// DeleteDocumentHandler removes a document record and its stored file
func (d Document) DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	documentID := mux.Vars(r)["document_id"]

	dID, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		config.ErrorStatus("invalid document ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	document, err := d.DB.FindOne(ctx, bson.M{"_id": dID})
	if err != nil {
		config.ErrorStatus("failed to find document", http.StatusNotFound, w, err)
		return
	}

	if err := d.DB.DeleteOne(ctx, bson.M{"_id": dID}); err != nil {
		config.ErrorStatus("failed to delete document", http.StatusInternalServerError, w, err)
		return
	}

	// best effort: the DB record is the source of truth
	if document.Details.PublicID != "" {
		if cld, cldErr := cloudinary.New(); cldErr == nil {
			_, destroyErr := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: document.Details.PublicID})
			if destroyErr != nil {
				zap.S().Warnw("failed to delete stored file", "publicId", document.Details.PublicID, "error", destroyErr)
			}
		}
	}

	if d.Hub != nil {
		d.Hub.BroadcastGlobal(relay.Event{
			Type: relay.EventDocumentDeleted,
			Data: map[string]interface{}{"documentId": documentID},
		}, "")
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "document deleted successfully"}`))
}

// GenerateSignature generates a signature for direct-to-Cloudinary uploads
func (d Document) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	response := map[string]string{
		"timestamp": timestamp,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	appassessment "github.com/bryanwahyu/ai-readiness/internal/application/assessment"
	appdocuments "github.com/bryanwahyu/ai-readiness/internal/application/documents"
	appprojects "github.com/bryanwahyu/ai-readiness/internal/application/projects"
	appquestionnaire "github.com/bryanwahyu/ai-readiness/internal/application/questionnaire"
	domai "github.com/bryanwahyu/ai-readiness/internal/domain/ai"
	domassessment "github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
	domdocuments "github.com/bryanwahyu/ai-readiness/internal/domain/documents"
	domprojects "github.com/bryanwahyu/ai-readiness/internal/domain/projects"
	"github.com/bryanwahyu/ai-readiness/internal/domain/users"
	"github.com/bryanwahyu/ai-readiness/internal/infra/auth"
	"github.com/bryanwahyu/ai-readiness/internal/middleware"
)

const (
	maxUploadFiles    = 3
	maxUploadFileSize = 20 << 20 // 20MB per file
)

// Deps wires the application services into the router.
type Deps struct {
	Projects      *appprojects.Service
	Documents     *appdocuments.Service
	Questionnaire *appquestionnaire.Service
	Assessment    *appassessment.Service
	Users         users.Repository
	OAuth         *auth.GoogleOAuth
	Sessions      *auth.SessionManager
	FrontendURL   string
}

type Router struct {
	deps Deps
}

func NewRouter(deps Deps) http.Handler {
	r := &Router{deps: deps}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.LivenessHandler)

	mux.Route("/auth", func(rt chi.Router) {
		rt.Get("/google", r.wrap(r.handleGoogleLogin))
		rt.Get("/google/callback", r.wrap(r.handleGoogleCallback))
		rt.Get("/check-session", r.wrap(r.handleCheckSession))
		rt.Post("/logout", r.wrap(r.handleLogout))
	})

	mux.Route("/api", func(rt chi.Router) {
		if deps.Sessions != nil {
			rt.Use(deps.Sessions.Require)
		}

		rt.Route("/projects", func(rt chi.Router) {
			rt.Get("/", r.wrap(r.handleListProjects))
			rt.Post("/", r.wrap(r.handleCreateProject))
			rt.Put("/{id}", r.wrap(r.handleUpdateProject))
			rt.Delete("/{id}", r.wrap(r.handleDeleteProject))
		})

		rt.Route("/documents", func(rt chi.Router) {
			rt.Post("/upload", r.wrap(r.handleUploadDocuments))
			rt.Get("/project/{projectId}", r.wrap(r.handleListDocuments))
			rt.Delete("/{id}", r.wrap(r.handleDeleteDocument))
		})

		rt.Route("/questionnaire", func(rt chi.Router) {
			rt.Get("/generate/{projectId}", r.wrap(r.handleGenerateQuestionnaire))
			rt.Get("/submission/{projectId}", r.wrap(r.handleGetSubmission))
			rt.Post("/submit", r.wrap(r.handleSubmit))
		})

		rt.Route("/assessment", func(rt chi.Router) {
			rt.Post("/analyze/{projectId}", r.wrap(r.handleAnalyze))
			rt.Get("/report/{projectId}", r.wrap(r.handleGetReport))
			rt.Get("/report/download/{projectId}", r.wrap(r.handleDownloadReport))
		})
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// httpError carries an explicit status through wrap.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(format string, args ...any) error {
	return &httpError{status: http.StatusBadRequest, msg: fmt.Sprintf(format, args...)}
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		var httpErr *httpError
		if errors.As(err, &httpErr) {
			writeError(w, httpErr.status, httpErr.msg)
			return
		}
		if errors.Is(err, domassessment.ErrNotFound) ||
			errors.Is(err, domprojects.ErrNotFound) ||
			errors.Is(err, domdocuments.ErrNotFound) ||
			errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, domassessment.ErrInvalidPayload) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domai.ErrQuotaExceeded) {
			writeError(w, http.StatusTooManyRequests, "ai quota exceeded")
			return
		}
		var malformed *domai.MalformedOutputError
		if errors.As(err, &malformed) {
			// keep the raw reply in the server log for diagnosis
			log.Printf("malformed model output: %v\nraw reply:\n%s", malformed.Err, malformed.Raw)
			writeError(w, http.StatusBadGateway, "failed to parse the JSON response from the AI model")
			return
		}
		log.Printf("request failed: %s %s: %v", req.Method, req.URL.Path, err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

//
// ==== auth ====
//

// GET /auth/google
func (r *Router) handleGoogleLogin(w http.ResponseWriter, req *http.Request) error {
	state, err := auth.NewState(w)
	if err != nil {
		return err
	}
	http.Redirect(w, req, r.deps.OAuth.AuthCodeURL(state), http.StatusTemporaryRedirect)
	return nil
}

// GET /auth/google/callback?state=&code=
func (r *Router) handleGoogleCallback(w http.ResponseWriter, req *http.Request) error {
	if !auth.VerifyState(req, req.URL.Query().Get("state")) {
		return badRequest("invalid oauth state")
	}
	u, err := r.deps.OAuth.FetchUser(req.Context(), req.URL.Query().Get("code"))
	if err != nil {
		return err
	}

	existing, err := r.deps.Users.GetByEmail(req.Context(), u.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		u.ID = existing.ID
		u.CreatedAt = existing.CreatedAt
	} else {
		u.ID = uuid.New().String()
	}
	if err := r.deps.Users.Upsert(req.Context(), u); err != nil {
		return err
	}

	r.deps.Sessions.Issue(w, u.ID)
	http.Redirect(w, req, r.deps.FrontendURL+"/dashboard", http.StatusTemporaryRedirect)
	return nil
}

// GET /auth/check-session
func (r *Router) handleCheckSession(w http.ResponseWriter, req *http.Request) error {
	userID, ok := r.deps.Sessions.UserID(req)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return nil
	}
	u, err := r.deps.Users.Get(req.Context(), userID)
	if err != nil {
		return err
	}
	if u == nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return nil
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "user": u})
	return nil
}

// POST /auth/logout
func (r *Router) handleLogout(w http.ResponseWriter, req *http.Request) error {
	r.deps.Sessions.Clear(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
	return nil
}

//
// ==== projects ====
//

// GET /api/projects
func (r *Router) handleListProjects(w http.ResponseWriter, req *http.Request) error {
	list, err := r.deps.Projects.List(req.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, list)
	return nil
}

// POST /api/projects
func (r *Router) handleCreateProject(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Name        string `json:"name"`
		ClientName  string `json:"clientName"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body")
	}
	if body.Name == "" || body.ClientName == "" {
		return badRequest("name and client name are required")
	}

	p, err := r.deps.Projects.Create(req.Context(),
		middleware.SanitizeString(body.Name),
		middleware.SanitizeString(body.ClientName),
		middleware.SanitizeString(body.Description),
		auth.UserIDFromContext(req.Context()),
	)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, p)
	return nil
}

// PUT /api/projects/{id}
func (r *Router) handleUpdateProject(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateProjectID(id); err != nil {
		return badRequest("%v", err)
	}
	var body struct {
		Name        string `json:"name"`
		ClientName  string `json:"clientName"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body")
	}

	p, err := r.deps.Projects.Update(req.Context(), domprojects.ProjectID(id),
		middleware.SanitizeString(body.Name),
		middleware.SanitizeString(body.ClientName),
		middleware.SanitizeString(body.Description),
	)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, p)
	return nil
}

// DELETE /api/projects/{id}
func (r *Router) handleDeleteProject(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateProjectID(id); err != nil {
		return badRequest("%v", err)
	}
	if err := r.deps.Projects.Delete(req.Context(), domprojects.ProjectID(id)); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
	return nil
}

//
// ==== documents ====
//

// POST /api/documents/upload (multipart: projectId + files[], max 3 x 20MB)
func (r *Router) handleUploadDocuments(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxUploadFiles*maxUploadFileSize)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		return badRequest("invalid multipart form: %v", err)
	}
	defer req.MultipartForm.RemoveAll()

	projectID := req.FormValue("projectId")
	if projectID == "" {
		projectID = req.URL.Query().Get("projectId")
	}
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}

	headers := req.MultipartForm.File["files"]
	if err := middleware.ValidateUploadCount(len(headers)); err != nil {
		return badRequest("%v", err)
	}

	files := make([]appdocuments.UploadFile, 0, len(headers))
	for _, h := range headers {
		if err := middleware.ValidateUploadFilename(h.Filename); err != nil {
			return badRequest("%s: %v", h.Filename, err)
		}
		if h.Size > maxUploadFileSize {
			return badRequest("%s exceeds the 20MB limit", h.Filename)
		}
		path, err := spoolUpload(h)
		if err != nil {
			return err
		}
		files = append(files, appdocuments.UploadFile{
			Name:        h.Filename,
			Path:        path,
			Size:        h.Size,
			ContentType: h.Header.Get("Content-Type"),
		})
	}

	saved, err := r.deps.Documents.Upload(req.Context(), projectID, files)
	if err != nil {
		return err
	}
	for range saved {
		middleware.IncrementUploads()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": fmt.Sprintf("%d file(s) uploaded successfully.", len(saved)),
		"files":   saved,
	})
	return nil
}

func spoolUpload(h *multipart.FileHeader) (string, error) {
	src, err := h.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// GET /api/documents/project/{projectId}
func (r *Router) handleListDocuments(w http.ResponseWriter, req *http.Request) error {
	projectID := chi.URLParam(req, "projectId")
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}
	docs, err := r.deps.Documents.ListByProject(req.Context(), projectID)
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []*domdocuments.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
	return nil
}

// DELETE /api/documents/{id}
func (r *Router) handleDeleteDocument(w http.ResponseWriter, req *http.Request) error {
	if err := r.deps.Documents.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "File and DB record deleted"})
	return nil
}

//
// ==== questionnaire ====
//

// GET /api/questionnaire/generate/{projectId}
func (r *Router) handleGenerateQuestionnaire(w http.ResponseWriter, req *http.Request) error {
	projectID := chi.URLParam(req, "projectId")
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}
	questions, err := r.deps.Questionnaire.Generate(req.Context(), projectID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projectId":     projectID,
		"questionnaire": questions,
		"generatedAt":   time.Now(),
	})
	return nil
}

// GET /api/questionnaire/submission/{projectId}
func (r *Router) handleGetSubmission(w http.ResponseWriter, req *http.Request) error {
	projectID := chi.URLParam(req, "projectId")
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}
	sub, err := r.deps.Questionnaire.GetSubmission(req.Context(), projectID)
	if err != nil {
		return err
	}
	// nil means "no submission yet": the frontend generates a fresh questionnaire
	writeJSON(w, http.StatusOK, map[string]any{"submission": sub})
	return nil
}

// POST /api/questionnaire/submit
func (r *Router) handleSubmit(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ProjectID  string                         `json:"projectId"`
		Submission []domassessment.SubmissionItem `json:"submission"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest("invalid JSON body")
	}
	if err := r.deps.Questionnaire.Submit(req.Context(), body.ProjectID, body.Submission); err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Assessment submitted successfully.",
	})
	return nil
}

//
// ==== assessment ====
//

// POST /api/assessment/analyze/{projectId}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	projectID := chi.URLParam(req, "projectId")
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}

	middleware.IncrementAnalyses()
	rep, err := r.deps.Assessment.RunAnalysis(req.Context(), projectID)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	writeJSON(w, http.StatusOK, rep)
	return nil
}

// GET /api/assessment/report/{projectId}
func (r *Router) handleGetReport(w http.ResponseWriter, req *http.Request) error {
	projectID := chi.URLParam(req, "projectId")
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}
	rep, err := r.deps.Assessment.GetReport(req.Context(), projectID)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rep)
	return nil
}

// GET /api/assessment/report/download/{projectId}
func (r *Router) handleDownloadReport(w http.ResponseWriter, req *http.Request) error {
	projectID := chi.URLParam(req, "projectId")
	if err := middleware.ValidateProjectID(projectID); err != nil {
		return badRequest("%v", err)
	}
	data, err := r.deps.Assessment.DownloadReport(req.Context(), projectID)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="AI-Readiness-Report-%s.pdf"`, projectID))
	w.Header().Set("Content-Type", "application/pdf")
	_, err = w.Write(data)
	return err
}

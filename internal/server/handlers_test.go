package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelab/resume-analyzer/internal/db"
	"github.com/resumelab/resume-analyzer/internal/server/middleware"
	"github.com/resumelab/resume-analyzer/internal/types"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	resumes   map[uuid.UUID]*db.Resume
	summaries []db.ResumeSummary
	saveErr   error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{resumes: make(map[uuid.UUID]*db.Resume)}
}

func (f *fakeStore) SaveResume(_ context.Context, userID uuid.UUID, fileName, fileType, originalText string, profile *types.CandidateProfile) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	id := uuid.New()
	f.resumes[id] = &db.Resume{
		ID:           id,
		UserID:       userID,
		FileName:     fileName,
		FileType:     fileType,
		OriginalText: originalText,
		Profile:      profile,
	}
	return id, nil
}

func (f *fakeStore) GetResume(_ context.Context, id uuid.UUID) (*db.Resume, error) {
	return f.resumes[id], nil
}

func (f *fakeStore) ListResumes(_ context.Context, _ db.ResumeFilters) ([]db.ResumeSummary, error) {
	return f.summaries, nil
}

func (f *fakeStore) DeleteResume(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.resumes[id]; !ok {
		return fmt.Errorf("resume not found: %s", id)
	}
	delete(f.resumes, id)
	return nil
}

// fakeFetcher returns canned job description text.
type fakeFetcher struct {
	text string
	err  error
}

func (f *fakeFetcher) FetchJobDescription(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func newTestServer(store Store, fetcher JobFetcher) *Server {
	return &Server{
		store:          store,
		fetcher:        fetcher,
		maxUploadBytes: 1 << 20,
	}
}

// withUser stores a user ID in the request context the way the auth
// middleware does.
func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey(), userID))
}

func multipartBody(t *testing.T, fileName, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleUploadResume(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store, &fakeFetcher{})

	resume := "John Smith\njohn@example.com\n8 years of experience\nJava and Python developer"
	body, contentType := multipartBody(t, "resume.txt", resume, nil)

	userID := uuid.New()
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body), userID)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.handleUploadResume(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "resume.txt", resp.FileName)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "John Smith", resp.Profile.PersonalInfo.FullName)
	assert.Equal(t, 8, resp.Profile.TotalExperienceYears)
	assert.Greater(t, resp.OverallScore, 0.0)
	assert.Nil(t, resp.ATS)

	// The resume landed in the store under the returned id, owned by the
	// authenticated user.
	stored := store.resumes[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "text", stored.FileType)
	assert.Equal(t, userID, stored.UserID)
}

func TestHandleUploadResume_Unauthenticated(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	body, contentType := multipartBody(t, "resume.txt", "Java developer", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.handleUploadResume(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleUploadResume_WithInlineATS(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	body, contentType := multipartBody(t, "resume.txt", "Java developer with experience",
		map[string]string{"jobDescription": "Java developer wanted"})

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body), uuid.New())
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.handleUploadResume(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.ATS)
	assert.Greater(t, resp.ATS.ATSScore, 0.0)
}

func TestHandleUploadResume_MissingFile(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.handleUploadResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing 'file' form field")
}

func TestHandleUploadResume_TooLarge(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})
	srv.maxUploadBytes = 16

	body, contentType := multipartBody(t, "resume.txt", strings.Repeat("x", 64), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	srv.handleUploadResume(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleGetResume(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{
		ID:       id,
		FileName: "resume.pdf",
		Profile:  &types.CandidateProfile{Seniority: types.SeniorityMid},
	}
	srv := newTestServer(store, &fakeFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleGetResume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got db.Resume
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "resume.pdf", got.FileName)
}

func TestHandleGetResume_NotFound(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/resumes/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleGetResume(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetResume_InvalidID(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/resumes/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	srv.handleGetResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid resume ID")
}

func TestHandleListResumes_EmptyIsArray(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	rec := httptest.NewRecorder()

	srv.handleListResumes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHandleDeleteResume(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{ID: id}
	srv := newTestServer(store, &fakeFetcher{})

	req := httptest.NewRequest(http.MethodDelete, "/api/resumes/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleDeleteResume(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "deleted")
	assert.NotContains(t, store.resumes, id)
}

func TestHandleDeleteResume_NotFound(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/resumes/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleDeleteResume(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleATSAnalysis(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{
		ID: id,
		Profile: &types.CandidateProfile{
			Skills:        []types.SkillRecord{{Name: "Java"}},
			ProcessedText: "java developer with experience",
		},
	}
	srv := newTestServer(store, &fakeFetcher{})

	body := `{"job_description": "Java developer with team experience"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/ats-analysis", strings.NewReader(body))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleATSAnalysis(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Greater(t, result.ATSScore, 0.0)
	assert.NotEmpty(t, result.OverallFeedback)
}

func TestHandleATSAnalysis_RequiresDescriptionOrURL(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeFetcher{})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/ats-analysis", strings.NewReader(`{}`))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleATSAnalysis(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "job_description or job_url")
}

func TestHandleATSAnalysis_FetchesJobURL(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{
		ID:      id,
		Profile: &types.CandidateProfile{ProcessedText: "java developer"},
	}
	srv := newTestServer(store, &fakeFetcher{text: "Java engineer wanted"})

	body := `{"job_url": "https://example.com/job"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/ats-analysis", strings.NewReader(body))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleATSAnalysis(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleATSAnalysis_FetchFailure(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{
		ID:      id,
		Profile: &types.CandidateProfile{ProcessedText: "java developer"},
	}
	srv := newTestServer(store, &fakeFetcher{err: fmt.Errorf("fetch failed")})

	body := `{"job_url": "https://example.com/job"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/ats-analysis", strings.NewReader(body))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleATSAnalysis(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSkillMatch(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{
		ID:           id,
		OriginalText: "java developer with python",
		Profile:      &types.CandidateProfile{ProcessedText: "java developer with python"},
	}
	srv := newTestServer(store, &fakeFetcher{})

	body := `{"required_skills": ["Java", "Rust"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/match", strings.NewReader(body))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleSkillMatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 0.3, resp.MatchScore, 1e-9)
}

func TestHandleSkillMatch_ScoresOriginalText(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	// A zero-width space separates the words in the original text. The
	// normalizer drops it, fusing the words so the whole-word pattern no
	// longer finds "java" in the processed text.
	store.resumes[id] = &db.Resume{
		ID:           id,
		OriginalText: "java\u200bexperience",
		Profile:      &types.CandidateProfile{ProcessedText: "javaexperience"},
	}
	srv := newTestServer(store, &fakeFetcher{})

	body := `{"required_skills": ["Java"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/match", strings.NewReader(body))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleSkillMatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 0.6, resp.MatchScore, 1e-9)
}

func TestHandleSkillMatch_MissingSkills(t *testing.T) {
	store := newFakeStore()
	id := uuid.New()
	store.resumes[id] = &db.Resume{ID: id, Profile: &types.CandidateProfile{}}
	srv := newTestServer(store, &fakeFetcher{})

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/"+id.String()+"/match", strings.NewReader(`{}`))
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	srv.handleSkillMatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFileTypeOf(t *testing.T) {
	tests := []struct {
		fileName    string
		contentType string
		expected    string
	}{
		{"resume.pdf", "", "pdf"},
		{"resume", "application/pdf", "pdf"},
		{"resume.docx", "", "docx"},
		{"resume.txt", "text/plain", "text"},
		{"resume", "", "text"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, fileTypeOf(tt.fileName, tt.contentType), tt.fileName)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/resumes?limit=10", nil)
	assert.Equal(t, 10, parseQueryInt(req, "limit", 50))

	req = httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	assert.Equal(t, 50, parseQueryInt(req, "limit", 50))

	req = httptest.NewRequest(http.MethodGet, "/api/resumes?limit=-3", nil)
	assert.Equal(t, 50, parseQueryInt(req, "limit", 50))

	req = httptest.NewRequest(http.MethodGet, "/api/resumes?limit=abc", nil)
	assert.Equal(t, 50, parseQueryInt(req, "limit", 50))
}

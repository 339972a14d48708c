package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/resumelab/resume-analyzer/internal/ats"
	"github.com/resumelab/resume-analyzer/internal/db"
	"github.com/resumelab/resume-analyzer/internal/ingestion"
	"github.com/resumelab/resume-analyzer/internal/pipeline"
	"github.com/resumelab/resume-analyzer/internal/server/middleware"
	"github.com/resumelab/resume-analyzer/internal/skills"
	"github.com/resumelab/resume-analyzer/internal/types"
)

// AnalysisResponse is the response for an uploaded resume.
type AnalysisResponse struct {
	ID           uuid.UUID               `json:"id"`
	FileName     string                  `json:"file_name"`
	Profile      *types.CandidateProfile `json:"profile"`
	OverallScore float64                 `json:"overall_score"`
	ATS          *types.MatchResult      `json:"ats,omitempty"`
}

// ATSRequest is the request body for an ATS analysis. Either the inline
// description or a job URL must be present.
type ATSRequest struct {
	JobDescription string `json:"job_description"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	JobURL         string `json:"job_url,omitempty"`
}

// MatchRequest is the request body for a required-skills match.
type MatchRequest struct {
	RequiredSkills []string `json:"required_skills" validate:"required"`
}

// MatchResponse carries the averaged skill-match score in [0,1].
type MatchResponse struct {
	MatchScore float64 `json:"match_score"`
}

// handleUploadResume accepts a multipart resume upload, runs the extraction
// pipeline and stores the result. When the form carries a job description
// (inline or by URL) the response includes an ATS analysis block.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file' form field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	if int64(len(data)) > s.maxUploadBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Uploaded file exceeds size limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	text := ingestion.ExtractText(header.Filename, contentType, data)
	profile := pipeline.Process(r.Context(), text)

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := s.store.SaveResume(r.Context(), userID, header.Filename, fileTypeOf(header.Filename, contentType), text, profile)
	if err != nil {
		log.Printf("Failed to save resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	resp := AnalysisResponse{
		ID:           id,
		FileName:     header.Filename,
		Profile:      profile,
		OverallScore: pipeline.OverallScore(profile),
	}

	// Optional inline ATS analysis
	atsReq := ATSRequest{
		JobDescription: r.FormValue("jobDescription"),
		JobTitle:       r.FormValue("jobTitle"),
		CompanyName:    r.FormValue("companyName"),
		JobURL:         r.FormValue("jobUrl"),
	}
	if atsReq.JobDescription != "" || atsReq.JobURL != "" {
		req, err := s.resolveJobRequirement(r, atsReq)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.ATS = ats.Analyze(profile, req)
	}

	s.jsonResponse(w, http.StatusCreated, resp)
}

// handleGetResume returns a stored resume with its profile
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleListResumes lists stored resumes for the authenticated user
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	filters := db.ResumeFilters{
		Limit: parseQueryInt(r, "limit", 50),
	}
	if userID, err := middleware.GetUserID(r); err == nil {
		filters.UserID = userID
	}

	resumes, err := s.store.ListResumes(r.Context(), filters)
	if err != nil {
		log.Printf("Failed to list resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}
	if resumes == nil {
		resumes = []db.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleDeleteResume deletes a stored resume
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Resume not found")
			return
		}
		log.Printf("Failed to delete resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleATSAnalysis runs an ATS match of a stored resume against a job
// description supplied inline or by URL.
func (s *Server) handleATSAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	var atsReq ATSRequest
	if err := json.NewDecoder(r.Body).Decode(&atsReq); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if atsReq.JobDescription == "" && atsReq.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job_description or job_url is required")
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	req, err := s.resolveJobRequirement(r, atsReq)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ats.Analyze(resume.Profile, req))
}

// handleSkillMatch scores a stored resume against a required-skills list.
// The match runs on the stored original text, not the normalized profile
// text, so characters dropped during normalization cannot hide a skill.
func (s *Server) handleSkillMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	var matchReq MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&matchReq); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validator.New().Struct(matchReq); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get resume %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	score := skills.MatchRequired(resume.OriginalText, matchReq.RequiredSkills)
	s.jsonResponse(w, http.StatusOK, MatchResponse{MatchScore: score})
}

// resolveJobRequirement builds the job requirement from an ATS request,
// fetching the description when only a URL was provided.
func (s *Server) resolveJobRequirement(r *http.Request, atsReq ATSRequest) (types.JobRequirement, error) {
	req := types.JobRequirement{
		JobDescription: atsReq.JobDescription,
		JobTitle:       atsReq.JobTitle,
		CompanyName:    atsReq.CompanyName,
	}
	if req.JobDescription == "" && atsReq.JobURL != "" {
		text, err := s.fetcher.FetchJobDescription(r.Context(), atsReq.JobURL)
		if err != nil {
			return req, err
		}
		req.JobDescription = text
	}
	return req, nil
}

// parseID reads and validates the {id} path value, writing the error
// response itself on failure.
func (s *Server) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID: "+idStr)
		return uuid.Nil, false
	}
	return id, true
}

// parseQueryInt reads an integer query parameter with a default
func parseQueryInt(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// fileTypeOf derives a short file type label from the name or content type
func fileTypeOf(fileName, contentType string) string {
	lower := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lower, ".pdf") || strings.Contains(contentType, "pdf"):
		return "pdf"
	case strings.HasSuffix(lower, ".docx"):
		return "docx"
	default:
		return "text"
	}
}

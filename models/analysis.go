package models

// Analysis is the resume scoring report returned by the upload endpoint.
// It is a typed view over [ResponseBody]; servers that answer with a
// different schema simply leave fields at their zero values.
type Analysis struct {
	Success  bool     `json:"success"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`

	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	JobType        string `json:"jobType"`

	FinalScore             int  `json:"finalScore"`
	KeywordScore           int  `json:"keywordScore"`
	SemanticScore          *int `json:"semanticScore"` // null when the embedding call failed
	ProjectExperienceScore int  `json:"projectExperienceScore"`
	ProblemSolvingScore    int  `json:"problemSolvingScore"`

	MatchedKeywords []string      `json:"matchedKeywords"`
	MissingKeywords []string      `json:"missingKeywords"`
	Stats           AnalysisStats `json:"stats"`
	Feedback        []string      `json:"feedback"`
}

// AnalysisStats carries keyword counters from the scoring run.
type AnalysisStats struct {
	TotalJobKeywords    int `json:"totalJobKeywords"`
	TotalResumeKeywords int `json:"totalResumeKeywords"`
	MatchedCount        int `json:"matchedCount"`
}

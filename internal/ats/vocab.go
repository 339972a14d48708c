package ats

// jobKeywords are generic soft/process keywords looked up in job descriptions
// and resume text. Matching is a plain case-insensitive substring test, looser
// than catalogue skill extraction so recall stays high on external text.
var jobKeywords = []string{
	"experience", "management", "leadership", "team", "project", "development",
	"analysis", "design", "implementation", "testing", "debugging", "optimization",
	"collaboration", "communication", "problem solving", "agile", "scrum",
	"bachelor", "master", "degree", "certification", "years",
}

// jobSkills are technical skill names looked up in job descriptions, matched
// the same loose way as jobKeywords.
var jobSkills = []string{
	"java", "python", "javascript", "react", "angular", "vue", "spring", "hibernate",
	"sql", "mysql", "postgresql", "mongodb", "redis", "docker", "kubernetes",
	"aws", "azure", "gcp", "git", "jenkins", "maven", "gradle", "junit",
	"rest", "api", "microservices", "html", "css", "bootstrap", "node.js",
	"express", "django", "flask", "laravel", "php", "c++", "c#", ".net",
	"machine learning", "ai", "data science", "pandas", "numpy", "tensorflow",
}

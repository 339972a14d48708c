// Package skills extracts categorized technical skills from resume text and
// scores each hit with a heuristic confidence.
package skills

// Category names for the fixed skill catalogue.
const (
	CategoryLanguages  = "Programming Languages"
	CategoryWeb        = "Web Technologies"
	CategoryFrameworks = "Frameworks"
	CategoryDatabases  = "Databases"
	CategoryCloud      = "Cloud & DevOps"
	CategoryTools      = "Tools & Others"
	CategoryDataAI     = "Data Science & AI"
	CategoryMobile     = "Mobile Development"
)

// catalogEntry binds a category to its recognized skill names.
type catalogEntry struct {
	Category string
	Skills   []string
}

// catalog is the fixed skill catalogue, scanned in declaration order so
// extraction output is deterministic. Some names appear in more than one
// category on purpose (e.g. Swift under both languages and mobile).
var catalog = []catalogEntry{
	{CategoryLanguages, []string{
		"Java", "Python", "JavaScript", "TypeScript", "C++", "C#", "C", "Go", "Rust",
		"Kotlin", "Swift", "PHP", "Ruby", "Scala", "R", "MATLAB", "Perl", "Dart", "Lua",
	}},
	{CategoryWeb, []string{
		"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express", "Bootstrap",
		"jQuery", "SASS", "LESS", "Webpack", "Vite", "Next.js", "Nuxt.js", "Svelte",
	}},
	{CategoryFrameworks, []string{
		"Spring", "Spring Boot", "Django", "Flask", "FastAPI", "Rails", "Laravel",
		"ASP.NET", "Hibernate", "JPA", "Struts", ".NET Core", "Entity Framework",
	}},
	{CategoryDatabases, []string{
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server",
		"SQLite", "Cassandra", "ElasticSearch", "DynamoDB", "Firebase", "Neo4j",
	}},
	{CategoryCloud, []string{
		"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins", "GitLab CI",
		"GitHub Actions", "Terraform", "Ansible", "Chef", "Puppet", "CircleCI",
	}},
	{CategoryTools, []string{
		"Git", "Maven", "Gradle", "npm", "JUnit", "Selenium", "REST", "GraphQL",
		"Microservices", "Agile", "Scrum", "JIRA", "Confluence", "Postman", "Swagger",
	}},
	{CategoryDataAI, []string{
		"Machine Learning", "AI", "Data Science", "TensorFlow", "PyTorch", "Scikit-learn",
		"Pandas", "NumPy", "Jupyter", "Apache Spark", "Hadoop", "Keras", "OpenCV",
	}},
	{CategoryMobile, []string{
		"Android", "iOS", "React Native", "Flutter", "Xamarin", "Ionic", "Cordova",
		"Swift", "Objective-C", "Kotlin",
	}},
}

// softSkills are non-technical skills matched the same way as catalogue entries.
var softSkills = []string{
	"Leadership", "Communication", "Problem Solving", "Teamwork", "Creativity",
	"Critical Thinking", "Time Management", "Adaptability", "Work Ethic",
	"Interpersonal Skills", "Project Management", "Analytical Skills",
}

// positiveContexts are phrases that raise confidence when found directly
// adjacent to a skill name, in either order.
var positiveContexts = []string{
	"experience", "proficient", "expert", "skilled", "years",
	"developed", "worked", "using", "with", "in", "knowledge",
	"familiar", "programming", "development", "project",
}

// variantSuffixes raise confidence when one directly follows the skill name.
var variantSuffixes = []string{".js", " framework", " development", " programming"}

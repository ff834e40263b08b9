package vocabulary

import "github.com/jonathan/skillgap-analyzer/internal/types"

// SkillEntry is one vocabulary item: a canonical skill name, its
// category, and the surface forms that map back to it.
type SkillEntry struct {
	Name       string
	Category   types.SkillCategory
	Variations []string
}

// builtinCatalog is the static skill catalog. Variations are surface
// forms beyond the canonical name itself; lookup is case-insensitive,
// so casing variants need no explicit entry.
var builtinCatalog = []SkillEntry{
	// Technical
	{Name: "Python", Category: types.CategoryTechnical, Variations: []string{"Python 3", "Python 2", "Py"}},
	{Name: "Java", Category: types.CategoryTechnical},
	{Name: "JavaScript", Category: types.CategoryTechnical, Variations: []string{"JS", "ES6", "JavaScript ES6", "ECMAScript"}},
	{Name: "TypeScript", Category: types.CategoryTechnical, Variations: []string{"TS"}},
	{Name: "SQL", Category: types.CategoryTechnical, Variations: []string{"Structured Query Language"}},
	{Name: "Machine Learning", Category: types.CategoryTechnical},
	{Name: "Deep Learning", Category: types.CategoryTechnical},
	{Name: "Natural Language Processing", Category: types.CategoryTechnical},
	{Name: "Data Science", Category: types.CategoryTechnical},
	{Name: "TensorFlow", Category: types.CategoryTechnical},
	{Name: "PyTorch", Category: types.CategoryTechnical},
	{Name: "React", Category: types.CategoryTechnical, Variations: []string{"React.js", "ReactJS"}},
	{Name: "Angular", Category: types.CategoryTechnical, Variations: []string{"AngularJS"}},
	{Name: "Vue.js", Category: types.CategoryTechnical, Variations: []string{"Vue", "VueJS"}},
	{Name: "Node.js", Category: types.CategoryTechnical, Variations: []string{"Node", "NodeJS"}},
	{Name: "Go", Category: types.CategoryTechnical, Variations: []string{"Golang"}},
	{Name: "Rust", Category: types.CategoryTechnical},
	{Name: "C++", Category: types.CategoryTechnical},
	{Name: "C#", Category: types.CategoryTechnical},
	{Name: "Ruby", Category: types.CategoryTechnical, Variations: []string{"Ruby on Rails", "Rails"}},
	{Name: "PHP", Category: types.CategoryTechnical},
	{Name: "Swift", Category: types.CategoryTechnical},
	{Name: "Kotlin", Category: types.CategoryTechnical},
	{Name: "Scala", Category: types.CategoryTechnical},
	{Name: "Django", Category: types.CategoryTechnical},
	{Name: "Flask", Category: types.CategoryTechnical},
	{Name: "FastAPI", Category: types.CategoryTechnical},
	{Name: "Spring Boot", Category: types.CategoryTechnical, Variations: []string{"Spring"}},
	{Name: "Docker", Category: types.CategoryTechnical, Variations: []string{"Containerization"}},
	{Name: "Kubernetes", Category: types.CategoryTechnical, Variations: []string{"K8s"}},
	{Name: "AWS", Category: types.CategoryTechnical, Variations: []string{"Amazon Web Services"}},
	{Name: "Azure", Category: types.CategoryTechnical, Variations: []string{"Microsoft Azure"}},
	{Name: "GCP", Category: types.CategoryTechnical, Variations: []string{"Google Cloud Platform", "Google Cloud"}},
	{Name: "Git", Category: types.CategoryTechnical},
	{Name: "CI/CD", Category: types.CategoryTechnical, Variations: []string{"CICD", "Continuous Integration", "Continuous Deployment"}},
	{Name: "Microservices", Category: types.CategoryTechnical, Variations: []string{"Microservice Architecture"}},
	{Name: "REST API", Category: types.CategoryTechnical, Variations: []string{"REST", "RESTful API", "RESTful"}},
	{Name: "GraphQL", Category: types.CategoryTechnical},
	{Name: "MongoDB", Category: types.CategoryTechnical, Variations: []string{"Mongo"}},
	{Name: "PostgreSQL", Category: types.CategoryTechnical, Variations: []string{"Postgres"}},
	{Name: "MySQL", Category: types.CategoryTechnical},
	{Name: "Redis", Category: types.CategoryTechnical},
	{Name: "Elasticsearch", Category: types.CategoryTechnical, Variations: []string{"Elastic Search"}},
	{Name: "Kafka", Category: types.CategoryTechnical, Variations: []string{"Apache Kafka"}},
	{Name: "Spark", Category: types.CategoryTechnical, Variations: []string{"Apache Spark"}},
	{Name: "Terraform", Category: types.CategoryTechnical},
	{Name: "Ansible", Category: types.CategoryTechnical},
	{Name: "Linux", Category: types.CategoryTechnical},
	{Name: "Pandas", Category: types.CategoryTechnical},
	{Name: "NumPy", Category: types.CategoryTechnical},
	{Name: "Scikit-learn", Category: types.CategoryTechnical, Variations: []string{"sklearn"}},
	{Name: "Computer Vision", Category: types.CategoryTechnical},
	{Name: "ETL", Category: types.CategoryTechnical, Variations: []string{"Data Pipeline", "Data Pipelines"}},
	{Name: "HTML", Category: types.CategoryTechnical},
	{Name: "CSS", Category: types.CategoryTechnical},

	// Soft
	{Name: "Communication", Category: types.CategorySoft, Variations: []string{"Communication Skills"}},
	{Name: "Leadership", Category: types.CategorySoft},
	{Name: "Teamwork", Category: types.CategorySoft, Variations: []string{"Team Player"}},
	{Name: "Problem Solving", Category: types.CategorySoft, Variations: []string{"Problem-Solving"}},
	{Name: "Critical Thinking", Category: types.CategorySoft},
	{Name: "Creativity", Category: types.CategorySoft},
	{Name: "Adaptability", Category: types.CategorySoft},
	{Name: "Time Management", Category: types.CategorySoft},
	{Name: "Project Management", Category: types.CategorySoft},
	{Name: "Collaboration", Category: types.CategorySoft},
	{Name: "Analytical Skills", Category: types.CategorySoft, Variations: []string{"Analytical Thinking"}},
	{Name: "Decision Making", Category: types.CategorySoft, Variations: []string{"Decision-Making"}},
	{Name: "Negotiation", Category: types.CategorySoft},
	{Name: "Mentoring", Category: types.CategorySoft, Variations: []string{"Mentorship"}},
	{Name: "Public Speaking", Category: types.CategorySoft},
	{Name: "Attention to Detail", Category: types.CategorySoft, Variations: []string{"Detail-Oriented"}},

	// Tools
	{Name: "Jira", Category: types.CategoryTools},
	{Name: "Confluence", Category: types.CategoryTools},
	{Name: "Slack", Category: types.CategoryTools},
	{Name: "Trello", Category: types.CategoryTools},
	{Name: "Asana", Category: types.CategoryTools},
	{Name: "Figma", Category: types.CategoryTools},
	{Name: "Sketch", Category: types.CategoryTools},
	{Name: "VS Code", Category: types.CategoryTools, Variations: []string{"Visual Studio Code", "VSCode"}},
	{Name: "IntelliJ", Category: types.CategoryTools, Variations: []string{"IntelliJ IDEA"}},
	{Name: "Postman", Category: types.CategoryTools},
	{Name: "Grafana", Category: types.CategoryTools},
	{Name: "Prometheus", Category: types.CategoryTools},
	{Name: "Jenkins", Category: types.CategoryTools},
	{Name: "GitHub Actions", Category: types.CategoryTools},
	{Name: "Tableau", Category: types.CategoryTools},
	{Name: "Power BI", Category: types.CategoryTools, Variations: []string{"PowerBI"}},
	{Name: "Excel", Category: types.CategoryTools, Variations: []string{"Microsoft Excel"}},

	// Certifications
	{Name: "AWS Certified", Category: types.CategoryCertifications, Variations: []string{"AWS Certification", "AWS Certified Solutions Architect"}},
	{Name: "Azure Certified", Category: types.CategoryCertifications, Variations: []string{"Azure Certification"}},
	{Name: "Google Cloud Certified", Category: types.CategoryCertifications, Variations: []string{"GCP Certified"}},
	{Name: "PMP", Category: types.CategoryCertifications, Variations: []string{"Project Management Professional"}},
	{Name: "Scrum Master", Category: types.CategoryCertifications, Variations: []string{"CSM", "Certified Scrum Master"}},
	{Name: "CISSP", Category: types.CategoryCertifications},
	{Name: "CompTIA", Category: types.CategoryCertifications, Variations: []string{"CompTIA Security+", "CompTIA A+"}},
	{Name: "Cisco Certified", Category: types.CategoryCertifications, Variations: []string{"CCNA", "CCNP"}},
	{Name: "Oracle Certified", Category: types.CategoryCertifications},
	{Name: "Microsoft Certified", Category: types.CategoryCertifications},
	{Name: "Salesforce Certified", Category: types.CategoryCertifications},
}

// builtinAcronyms maps curated abbreviations to canonical catalog names.
// Keys are matched case-sensitively as standalone upper-case tokens so
// that prose words ("ml" inside "html") never trigger them.
var builtinAcronyms = map[string]string{
	"ML":  "Machine Learning",
	"DL":  "Deep Learning",
	"NLP": "Natural Language Processing",
	"K8S": "Kubernetes",
	"AWS": "AWS",
	"GCP": "GCP",
	"PM":  "Project Management",
	"TF":  "TensorFlow",
	"CV":  "Computer Vision",
	"JS":  "JavaScript",
	"TS":  "TypeScript",
	"PG":  "PostgreSQL",
}

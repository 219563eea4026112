package constant

// Sampling presets per generation step. Plans use the provider default.
const (
	DailyPlanTemperature = 0.7
	ContentTemperature   = 0.3
	ContentTopP          = 0.9
	QuizTemperature      = 0.7
)

const (
	DefaultLearnerLevel = "intermediaire"
	DefaultTrainerName  = "Formateur"
	ConclusionTitle     = "Conclusion"
)

// DownloadRoute prefixes the download_url of generated files.
const DownloadRoute = "/api/download/"

// Artifact file name patterns, relative to the output folder.
const (
	PlanFileFormat         = "%s_plan.json"
	DailyPlanFileFormat    = "%s_plan_jour.json"
	ContentFileFormat      = "%s_content.json"
	DailyContentFileFormat = "%s_contenu_jour.json"
	QuizFileFormat         = "%s_quiz_%s.json"
	FormSessionFileFormat  = "form_session_%s.json"
	PDFFileFormat          = "%s_presentation.pdf"
	PPTXFileFormat         = "%s_presentation.pptx"
)

const (
	FormatPDF  = "pdf"
	FormatPPTX = "pptx"
	FormatBoth = "both"

	ModeSections = "sections"
	ModeDaily    = "jour"
)

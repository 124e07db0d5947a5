package appdata

// Label keys of EditableContent.
const (
	LabelAppTitle                   = "appTitle"
	LabelSidebarSubtitle            = "sidebarSubtitle"
	LabelDashboardGreeting          = "dashboardGreeting"
	LabelDashboardQuickActionsTitle = "dashboardQuickActionsTitle"
	LabelDashboardDeadlinesTitle    = "dashboardDeadlinesTitle"
	LabelDashboardFocusTitle        = "dashboardFocusTitle"
	LabelDashboardGoalsTitle        = "dashboardGoalsTitle"
	LabelStudyHubTitle              = "studyHubTitle"
	LabelWritingTitle               = "writingTitle"
	LabelBooksTitle                 = "booksTitle"
	LabelLearnTitle                 = "learnTitle"
	LabelJournalTitle               = "journalTitle"
	LabelMeTitle                    = "meTitle"
	LabelMeSubtitle                 = "meSubtitle"
	LabelMeValuesTitle              = "meValuesTitle"
	LabelMeVisionTitle              = "meVisionTitle"
	LabelMeStrengthsTitle           = "meStrengthsTitle"
	LabelMeAchievementsTitle        = "meAchievementsTitle"
	LabelMusicTitle                 = "musicTitle"
	LabelMusicSubtitle              = "musicSubtitle"
)

// Color variable names of CustomColors.
const (
	VarBgPrimary          = "--bg-primary"
	VarBgSecondary        = "--bg-secondary"
	VarBgInteractive      = "--bg-interactive"
	VarBorderPrimary      = "--border-primary"
	VarBorderSecondary    = "--border-secondary"
	VarTextPrimary        = "--text-primary"
	VarTextSecondary      = "--text-secondary"
	VarTextMuted          = "--text-muted"
	VarTextHeader         = "--text-header"
	VarAccentPrimary      = "--accent-primary"
	VarAccentPrimaryHover = "--accent-primary-hover"
	VarAccentSecondary    = "--accent-secondary"
)

// ColorVars lists the custom palette variables in display order.
var ColorVars = []string{
	VarBgPrimary,
	VarBgSecondary,
	VarBgInteractive,
	VarBorderPrimary,
	VarBorderSecondary,
	VarTextPrimary,
	VarTextSecondary,
	VarTextMuted,
	VarTextHeader,
	VarAccentPrimary,
	VarAccentPrimaryHover,
	VarAccentSecondary,
}

// LabelKeys lists the label keys in display order.
var LabelKeys = []string{
	LabelAppTitle,
	LabelSidebarSubtitle,
	LabelDashboardGreeting,
	LabelDashboardQuickActionsTitle,
	LabelDashboardDeadlinesTitle,
	LabelDashboardFocusTitle,
	LabelDashboardGoalsTitle,
	LabelStudyHubTitle,
	LabelWritingTitle,
	LabelBooksTitle,
	LabelLearnTitle,
	LabelJournalTitle,
	LabelMeTitle,
	LabelMeSubtitle,
	LabelMeValuesTitle,
	LabelMeVisionTitle,
	LabelMeStrengthsTitle,
	LabelMeAchievementsTitle,
	LabelMusicTitle,
	LabelMusicSubtitle,
}

// DefaultEditableContent returns a fresh copy of the default labels.
func DefaultEditableContent() EditableContent {
	return EditableContent{
		LabelAppTitle:                   "AcademiaOS",
		LabelSidebarSubtitle:            "Your Personal Hub",
		LabelDashboardGreeting:          "Here's your snapshot for today.",
		LabelDashboardQuickActionsTitle: "Quick Actions",
		LabelDashboardDeadlinesTitle:    "Upcoming Deadlines",
		LabelDashboardFocusTitle:        "Today's Focus",
		LabelDashboardGoalsTitle:        "Goal Progress",
		LabelStudyHubTitle:              "Study Hub",
		LabelWritingTitle:               "My Writings",
		LabelBooksTitle:                 "Reading List",
		LabelLearnTitle:                 "Expand Your Mind",
		LabelJournalTitle:               "Past Entries",
		LabelMeTitle:                    "About Me",
		LabelMeSubtitle:                 "Your personal space for reflection and growth.",
		LabelMeValuesTitle:              "Core Values",
		LabelMeVisionTitle:              "Personal Vision",
		LabelMeStrengthsTitle:           "Strengths & Weaknesses",
		LabelMeAchievementsTitle:        "Achievements",
		LabelMusicTitle:                 "Music Hub",
		LabelMusicSubtitle:              "Set the mood with your favorite tracks from Spotify.",
	}
}

// DefaultCustomColors returns a fresh copy of the default custom palette.
func DefaultCustomColors() CustomColors {
	return CustomColors{
		VarBgPrimary:          "#1c1917",
		VarBgSecondary:        "#292524",
		VarBgInteractive:      "#44403c",
		VarBorderPrimary:      "#44403c",
		VarBorderSecondary:    "#57534e",
		VarTextPrimary:        "#e7e5e4",
		VarTextSecondary:      "#a8a29e",
		VarTextMuted:          "#78716c",
		VarTextHeader:         "#fde68a",
		VarAccentPrimary:      "#d97706",
		VarAccentPrimaryHover: "#b45309",
		VarAccentSecondary:    "#f59e0b",
	}
}

// Default returns the aggregate a new identity starts with. Every call
// returns independent slices and maps.
func Default() AppData {
	return AppData{
		Todos:           []Todo{},
		Goals:           []Goal{},
		Exams:           []Exam{},
		Habits:          []Habit{},
		Writings:        []Writing{},
		Books:           []Book{},
		JournalEntries:  []JournalEntry{},
		MeData:          MeData{},
		Playlist:        []PlaylistItem{},
		SpotifyURI:      "",
		EditableContent: DefaultEditableContent(),
		Theme:           ThemeDarkAcademia,
		CustomColors:    DefaultCustomColors(),
	}
}

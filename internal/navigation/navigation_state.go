package navigation

// Page identifiers. Satu tag per halaman; tag di luar daftar ini selalu
// jatuh kembali ke PageMainHero.
const (
	PageMainHero       = "mainHero"
	PageAbout          = "aboutPage"
	PageContact        = "contactPage"
	PageAdminLogin     = "adminLogin"
	PageAdminDashboard = "adminDashboard"
	PageEmployeeInput  = "employeeInput"
	PageEmployeeList   = "employeeList"
	PageProblemInput   = "problemInput"
	PageProblemList    = "problemList"
	PageBiodataSearch  = "biodataSearch"
	PageUserMenu       = "userMenu"
	PageBiodata        = "biodataPage"
	PageUserProblem    = "userProblemPage"
	PageUserProduction = "userProductionPage"
)

const (
	VisibilityPublic = "public"
	VisibilityAdmin  = "admin"
	VisibilityUser   = "user"
)

var validPages = map[string]struct{}{
	PageMainHero:       {},
	PageAbout:          {},
	PageContact:        {},
	PageAdminLogin:     {},
	PageAdminDashboard: {},
	PageEmployeeInput:  {},
	PageEmployeeList:   {},
	PageProblemInput:   {},
	PageProblemList:    {},
	PageBiodataSearch:  {},
	PageUserMenu:       {},
	PageBiodata:        {},
	PageUserProblem:    {},
	PageUserProduction: {},
}

// Halaman yang mendapat kontrol header "user" saat tidak login sebagai admin.
var userScopedPages = map[string]struct{}{
	PageUserMenu:       {},
	PageBiodata:        {},
	PageUserProblem:    {},
	PageUserProduction: {},
}

func IsValidPage(page string) bool {
	_, ok := validPages[page]
	return ok
}

// State adalah satu-satunya state UI global: halaman aktif, history stack,
// dan flag admin. Disimpan per session, bukan sebagai global mutable state.
type State struct {
	CurrentPage        string   `json:"current_page"`
	History            []string `json:"history"`
	AdminAuthenticated bool     `json:"admin_authenticated"`
}

func NewState() State {
	return State{
		CurrentPage: PageMainHero,
		History:     []string{PageMainHero},
	}
}

// Navigate mengganti halaman aktif. History hanya bertambah pada navigasi
// maju; back-action tidak menambah history. Target di luar enumerasi jatuh
// ke PageMainHero tanpa error.
func (s *State) Navigate(page string, isBack bool) {
	if !IsValidPage(page) {
		page = PageMainHero
	}

	s.CurrentPage = page
	if !isBack {
		s.History = append(s.History, page)
	}
}

// GoBack mem-pop entri terakhir dan berpindah ke entri baru paling atas.
// Saat history tinggal satu entri, halaman aktif kembali ke home dan
// history tidak pernah menyusut di bawah satu.
func (s *State) GoBack() {
	if len(s.History) > 1 {
		s.History = s.History[:len(s.History)-1]
		s.Navigate(s.History[len(s.History)-1], true)
		return
	}

	s.Navigate(PageMainHero, true)
}

// Login menyalakan flag admin dan berpindah ke landing page admin.
func (s *State) Login() {
	s.AdminAuthenticated = true
	s.Navigate(PageAdminDashboard, false)
}

// Logout mematikan flag admin dan mereset history ke home saja.
func (s *State) Logout() {
	s.AdminAuthenticated = false
	s.CurrentPage = PageMainHero
	s.History = []string{PageMainHero}
}

// VisibilityMode adalah fungsi murni dari (flag admin, halaman aktif).
// Admin selalu menang atas aturan per halaman.
func (s State) VisibilityMode() string {
	if s.AdminAuthenticated {
		return VisibilityAdmin
	}
	if _, ok := userScopedPages[s.CurrentPage]; ok {
		return VisibilityUser
	}
	return VisibilityPublic
}

package menupage

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/tablefork/dishboard/internal/api"
	"github.com/tablefork/dishboard/internal/apperr"
)

// Form field indexes, in focus order.
const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldIngredients
	fieldPrepTime
	fieldImageURL
	fieldCount
)

// form is the create/edit dialog. An empty editingID means create.
type form struct {
	inputs    []textinput.Model
	focus     int
	category  api.Category
	available bool
	editingID string
}

func newForm() form {
	labels := []string{"Tomato Soup", "Short description", "9.50", "tomato, basil, cream", "15", "https://..."}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 200
		inputs[i] = ti
	}
	inputs[fieldName].CharLimit = 80
	inputs[fieldPrice].CharLimit = 12
	inputs[fieldPrepTime].CharLimit = 4

	return form{
		inputs:    inputs,
		category:  api.CategoryAppetizer,
		available: true,
	}
}

// load populates the form from an existing item for editing.
func (f *form) load(item api.MenuItem) {
	f.editingID = item.ID
	f.category = item.Category
	f.available = item.IsAvailable
	f.inputs[fieldName].SetValue(item.Name)
	f.inputs[fieldDescription].SetValue(item.Description)
	f.inputs[fieldPrice].SetValue(strconv.FormatFloat(item.Price, 'f', -1, 64))
	f.inputs[fieldIngredients].SetValue(joinIngredients(item.Ingredients))
	f.inputs[fieldPrepTime].SetValue(strconv.Itoa(item.PreparationTime))
	f.inputs[fieldImageURL].SetValue(item.ImageURL)
}

// reset clears every field back to the create defaults.
func (f *form) reset() {
	f.editingID = ""
	f.category = api.CategoryAppetizer
	f.available = true
	f.focus = 0
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
}

func (f *form) focusField(i int) {
	f.focus = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *form) cycleCategory() {
	cats := api.Categories()
	for i, c := range cats {
		if c == f.category {
			f.category = cats[(i+1)%len(cats)]
			return
		}
	}
	f.category = cats[0]
}

// payload validates the form and builds the request body. Numeric and
// required gating only; everything else is the server's call.
func (f *form) payload() (api.MenuItemPayload, error) {
	name := strings.TrimSpace(f.inputs[fieldName].Value())
	if name == "" {
		return api.MenuItemPayload{}, apperr.NewValidationError("name", "is required")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[fieldPrice].Value()), 64)
	if err != nil {
		return api.MenuItemPayload{}, apperr.NewValidationError("price", "must be a number")
	}
	if price < 0 {
		return api.MenuItemPayload{}, apperr.NewValidationError("price", "must be >= 0")
	}

	prep := 0
	if raw := strings.TrimSpace(f.inputs[fieldPrepTime].Value()); raw != "" {
		prep, err = strconv.Atoi(raw)
		if err != nil || prep < 0 {
			return api.MenuItemPayload{}, apperr.NewValidationError("preparationTime", "must be a whole number of minutes")
		}
	}

	return api.MenuItemPayload{
		Name:            name,
		Description:     strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Category:        f.category,
		Price:           price,
		Ingredients:     splitIngredients(f.inputs[fieldIngredients].Value()),
		IsAvailable:     f.available,
		PreparationTime: prep,
		ImageURL:        strings.TrimSpace(f.inputs[fieldImageURL].Value()),
	}, nil
}

// splitIngredients turns comma-separated text into a token list,
// trimming whitespace and dropping empty tokens.
func splitIngredients(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// joinIngredients is the inverse, used when loading an item for edit.
func joinIngredients(tokens []string) string {
	return strings.Join(tokens, ", ")
}

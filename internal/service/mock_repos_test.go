package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"chefos/backend/internal/model"
	"chefos/backend/internal/repository"
	pkgerrors "chefos/backend/pkg/errors"
)

// ── Mock OrganizationRepository ──

type mockOrgRepo struct {
	orgs map[string]*model.Organization
}

func newMockOrgRepo() *mockOrgRepo {
	return &mockOrgRepo{orgs: make(map[string]*model.Organization)}
}

func (m *mockOrgRepo) Create(_ context.Context, org *model.Organization) error {
	if org.OrgID == "" {
		org.OrgID = fmt.Sprintf("org-%d", len(m.orgs)+1)
	}
	m.orgs[org.OrgID] = org
	return nil
}

func (m *mockOrgRepo) GetByID(_ context.Context, id string) (*model.Organization, error) {
	if o, ok := m.orgs[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrgRepo) Update(_ context.Context, org *model.Organization) error {
	m.orgs[org.OrgID] = org
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListByOrg(_ context.Context, orgID string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.OrgID == orgID {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock InviteCodeRepository ──

type mockInviteCodeRepo struct {
	codes map[string]*model.InviteCode
}

func newMockInviteCodeRepo() *mockInviteCodeRepo {
	return &mockInviteCodeRepo{codes: make(map[string]*model.InviteCode)}
}

func (m *mockInviteCodeRepo) Create(_ context.Context, code *model.InviteCode) error {
	m.codes[code.Code] = code
	return nil
}

func (m *mockInviteCodeRepo) GetByCode(_ context.Context, code string) (*model.InviteCode, error) {
	if c, ok := m.codes[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInviteCodeRepo) MarkUsed(_ context.Context, code, userID string) error {
	c, ok := m.codes[code]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	c.UsedBy = &userID
	c.UsedAt = &now
	return nil
}

// ── Mock IngredientRepository ──

type mockIngredientRepo struct {
	ingredients map[string]*model.Ingredient
}

func newMockIngredientRepo() *mockIngredientRepo {
	return &mockIngredientRepo{ingredients: make(map[string]*model.Ingredient)}
}

func (m *mockIngredientRepo) Create(_ context.Context, ing *model.Ingredient) error {
	if ing.IngredientID == "" {
		ing.IngredientID = fmt.Sprintf("ing-%d", len(m.ingredients)+1)
	}
	m.ingredients[ing.IngredientID] = ing
	return nil
}

func (m *mockIngredientRepo) GetByID(_ context.Context, orgID, id string) (*model.Ingredient, error) {
	if i, ok := m.ingredients[id]; ok && i.OrgID == orgID {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIngredientRepo) List(_ context.Context, orgID, category, _ string) ([]model.Ingredient, error) {
	var result []model.Ingredient
	for _, i := range m.ingredients {
		if i.OrgID != orgID {
			continue
		}
		if category != "" && i.Category != category {
			continue
		}
		result = append(result, *i)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockIngredientRepo) Update(_ context.Context, ing *model.Ingredient) error {
	m.ingredients[ing.IngredientID] = ing
	return nil
}

func (m *mockIngredientRepo) Delete(_ context.Context, orgID, id string) error {
	if i, ok := m.ingredients[id]; ok && i.OrgID == orgID {
		delete(m.ingredients, id)
	}
	return nil
}

// ── Mock RecipeRepository ──

type mockRecipeRepo struct {
	recipes     map[string]*model.Recipe
	ingredients *mockIngredientRepo // joined on read like the Preload does
}

func newMockRecipeRepo(ingredients *mockIngredientRepo) *mockRecipeRepo {
	return &mockRecipeRepo{recipes: make(map[string]*model.Recipe), ingredients: ingredients}
}

func (m *mockRecipeRepo) Create(_ context.Context, recipe *model.Recipe, lines []model.RecipeLine) error {
	if recipe.RecipeID == "" {
		recipe.RecipeID = fmt.Sprintf("rec-%d", len(m.recipes)+1)
	}
	for i := range lines {
		lines[i].RecipeID = recipe.RecipeID
		if lines[i].LineID == "" {
			lines[i].LineID = fmt.Sprintf("%s-line-%d", recipe.RecipeID, i+1)
		}
	}
	recipe.Lines = lines
	m.recipes[recipe.RecipeID] = recipe
	return nil
}

func (m *mockRecipeRepo) GetByID(_ context.Context, orgID, id string) (*model.Recipe, error) {
	r, ok := m.recipes[id]
	if !ok || r.OrgID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *r
	copied.Lines = make([]model.RecipeLine, len(r.Lines))
	copy(copied.Lines, r.Lines)
	for i := range copied.Lines {
		if ing, ok := m.ingredients.ingredients[copied.Lines[i].IngredientID]; ok {
			copied.Lines[i].Ingredient = ing
		}
	}
	return &copied, nil
}

func (m *mockRecipeRepo) List(_ context.Context, orgID string) ([]model.Recipe, error) {
	var result []model.Recipe
	for _, r := range m.recipes {
		if r.OrgID == orgID {
			copied := *r
			copied.Lines = nil
			result = append(result, copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRecipeRepo) Update(_ context.Context, recipe *model.Recipe) error {
	stored, ok := m.recipes[recipe.RecipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	lines := stored.Lines
	copied := *recipe
	copied.Lines = lines
	m.recipes[recipe.RecipeID] = &copied
	return nil
}

func (m *mockRecipeRepo) ReplaceLines(_ context.Context, recipeID string, lines []model.RecipeLine) error {
	r, ok := m.recipes[recipeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range lines {
		lines[i].RecipeID = recipeID
		if lines[i].LineID == "" {
			lines[i].LineID = fmt.Sprintf("%s-line-%d", recipeID, i+1)
		}
	}
	r.Lines = lines
	return nil
}

func (m *mockRecipeRepo) Delete(_ context.Context, orgID, id string) error {
	if r, ok := m.recipes[id]; ok && r.OrgID == orgID {
		delete(m.recipes, id)
	}
	return nil
}

// ── Mock InventoryRepository ──

type mockInventoryRepo struct {
	items       map[string]*model.InventoryItem
	adjustments []model.InventoryAdjustment
	ingredients *mockIngredientRepo
}

func newMockInventoryRepo(ingredients *mockIngredientRepo) *mockInventoryRepo {
	return &mockInventoryRepo{items: make(map[string]*model.InventoryItem), ingredients: ingredients}
}

func (m *mockInventoryRepo) Upsert(_ context.Context, item *model.InventoryItem) error {
	for _, existing := range m.items {
		if existing.OrgID == item.OrgID && existing.IngredientID == item.IngredientID {
			existing.OnHand = item.OnHand
			existing.ParLevel = item.ParLevel
			existing.Unit = item.Unit
			return nil
		}
	}
	if item.ItemID == "" {
		item.ItemID = fmt.Sprintf("item-%d", len(m.items)+1)
	}
	if item.Version == 0 {
		item.Version = 1
	}
	m.items[item.ItemID] = item
	return nil
}

func (m *mockInventoryRepo) GetByID(_ context.Context, orgID, itemID string) (*model.InventoryItem, error) {
	if i, ok := m.items[itemID]; ok && i.OrgID == orgID {
		return m.withIngredient(i), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInventoryRepo) GetByIngredient(_ context.Context, orgID, ingredientID string) (*model.InventoryItem, error) {
	for _, i := range m.items {
		if i.OrgID == orgID && i.IngredientID == ingredientID {
			return m.withIngredient(i), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInventoryRepo) List(_ context.Context, orgID string) ([]model.InventoryItem, error) {
	var result []model.InventoryItem
	for _, i := range m.items {
		if i.OrgID == orgID {
			result = append(result, *m.withIngredient(i))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ItemID < result[j].ItemID })
	return result, nil
}

func (m *mockInventoryRepo) UpdateVersioned(_ context.Context, item *model.InventoryItem) error {
	stored, ok := m.items[item.ItemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != item.Version {
		return pkgerrors.ErrOptimisticLock
	}
	item.Version++
	stored.OnHand = item.OnHand
	stored.ParLevel = item.ParLevel
	stored.Unit = item.Unit
	stored.Version = item.Version
	return nil
}

func (m *mockInventoryRepo) RecordAdjustment(_ context.Context, adj *model.InventoryAdjustment) error {
	if adj.AdjustmentID == "" {
		adj.AdjustmentID = fmt.Sprintf("adj-%d", len(m.adjustments)+1)
	}
	adj.CreatedAt = time.Now()
	m.adjustments = append(m.adjustments, *adj)
	return nil
}

func (m *mockInventoryRepo) ListAdjustments(_ context.Context, itemID string, limit int) ([]model.InventoryAdjustment, error) {
	var result []model.InventoryAdjustment
	for i := len(m.adjustments) - 1; i >= 0 && len(result) < limit; i-- {
		if m.adjustments[i].ItemID == itemID {
			result = append(result, m.adjustments[i])
		}
	}
	return result, nil
}

func (m *mockInventoryRepo) withIngredient(item *model.InventoryItem) *model.InventoryItem {
	copied := *item
	if ing, ok := m.ingredients.ingredients[item.IngredientID]; ok {
		copied.Ingredient = ing
	}
	return &copied
}

// ── Mock PrepTaskRepository ──

type mockPrepTaskRepo struct {
	tasks map[string]*model.PrepTask
}

func newMockPrepTaskRepo() *mockPrepTaskRepo {
	return &mockPrepTaskRepo{tasks: make(map[string]*model.PrepTask)}
}

func (m *mockPrepTaskRepo) Create(_ context.Context, task *model.PrepTask) error {
	if task.TaskID == "" {
		task.TaskID = fmt.Sprintf("task-%d", len(m.tasks)+1)
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockPrepTaskRepo) GetByID(_ context.Context, orgID, id string) (*model.PrepTask, error) {
	if t, ok := m.tasks[id]; ok && t.OrgID == orgID {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPrepTaskRepo) ListByDate(_ context.Context, orgID string, date time.Time, station string) ([]model.PrepTask, error) {
	day := date.Format(model.DateOnly)
	var result []model.PrepTask
	for _, t := range m.tasks {
		if t.OrgID != orgID || t.PrepDate.Format(model.DateOnly) != day {
			continue
		}
		if station != "" && t.Station != station {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Station != result[j].Station {
			return result[i].Station < result[j].Station
		}
		return result[i].Position < result[j].Position
	})
	return result, nil
}

func (m *mockPrepTaskRepo) Update(_ context.Context, task *model.PrepTask) error {
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockPrepTaskRepo) Delete(_ context.Context, orgID, id string) error {
	if t, ok := m.tasks[id]; ok && t.OrgID == orgID {
		delete(m.tasks, id)
	}
	return nil
}

// ── Mock TemperatureLogRepository ──

type mockTemperatureLogRepo struct {
	logs []model.TemperatureLog
}

func newMockTemperatureLogRepo() *mockTemperatureLogRepo {
	return &mockTemperatureLogRepo{}
}

func (m *mockTemperatureLogRepo) Create(_ context.Context, log *model.TemperatureLog) error {
	if log.LogID == "" {
		log.LogID = fmt.Sprintf("log-%d", len(m.logs)+1)
	}
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockTemperatureLogRepo) List(_ context.Context, orgID string, filter repository.TemperatureLogFilter, offset, limit int) ([]model.TemperatureLog, int64, error) {
	var matched []model.TemperatureLog
	for _, l := range m.logs {
		if l.OrgID != orgID {
			continue
		}
		if filter.CheckType != "" && l.CheckType != filter.CheckType {
			continue
		}
		if filter.From != nil && l.RecordedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !l.RecordedAt.Before(*filter.To) {
			continue
		}
		matched = append(matched, l)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].RecordedAt.After(matched[j].RecordedAt) })

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

// ── Mock DutyRepository ──

// failInject lets tests make a specific slot lookup fail with a store
// error, to verify errors are not conflated with "unassigned".
type mockDutyRepo struct {
	duties     map[string]*model.DutyAssignment // keyed by slot
	users      *mockUserRepo
	failInject error
}

func newMockDutyRepo(users *mockUserRepo) *mockDutyRepo {
	return &mockDutyRepo{duties: make(map[string]*model.DutyAssignment), users: users}
}

func dutySlotKey(orgID, shift string, dutyDate *time.Time) string {
	d := "default"
	if dutyDate != nil {
		d = dutyDate.Format(model.DateOnly)
	}
	return orgID + ":" + shift + ":" + d
}

func (m *mockDutyRepo) Upsert(_ context.Context, duty *model.DutyAssignment) error {
	key := dutySlotKey(duty.OrgID, duty.Shift, duty.DutyDate)
	if existing, ok := m.duties[key]; ok {
		existing.UserID = duty.UserID
		existing.AssignedBy = duty.AssignedBy
		return nil
	}
	if duty.DutyID == "" {
		duty.DutyID = fmt.Sprintf("duty-%d", len(m.duties)+1)
	}
	duty.CreatedAt = time.Now()
	m.duties[key] = duty
	return nil
}

func (m *mockDutyRepo) GetSlot(_ context.Context, orgID, shift string, dutyDate *time.Time) (*model.DutyAssignment, error) {
	if m.failInject != nil {
		return nil, m.failInject
	}
	if d, ok := m.duties[dutySlotKey(orgID, shift, dutyDate)]; ok {
		return m.withUser(d), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDutyRepo) ListForDate(_ context.Context, orgID string, date time.Time) ([]model.DutyAssignment, error) {
	day := date.Format(model.DateOnly)
	var result []model.DutyAssignment
	for _, d := range m.duties {
		if d.OrgID != orgID {
			continue
		}
		if d.DutyDate != nil && d.DutyDate.Format(model.DateOnly) != day {
			continue
		}
		result = append(result, *m.withUser(d))
	}
	return result, nil
}

func (m *mockDutyRepo) ListDefaults(_ context.Context, orgID string) ([]model.DutyAssignment, error) {
	var result []model.DutyAssignment
	for _, d := range m.duties {
		if d.OrgID == orgID && d.DutyDate == nil {
			result = append(result, *m.withUser(d))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Shift < result[j].Shift })
	return result, nil
}

func (m *mockDutyRepo) DeleteSlot(_ context.Context, orgID, shift string, dutyDate *time.Time) error {
	delete(m.duties, dutySlotKey(orgID, shift, dutyDate))
	return nil
}

func (m *mockDutyRepo) withUser(d *model.DutyAssignment) *model.DutyAssignment {
	copied := *d
	if u, ok := m.users.users[d.UserID]; ok {
		copied.User = u
	}
	return &copied
}

// ── Mock VendorRepository ──

type mockVendorRepo struct {
	vendors map[string]*model.Vendor
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{vendors: make(map[string]*model.Vendor)}
}

func (m *mockVendorRepo) Create(_ context.Context, vendor *model.Vendor) error {
	if vendor.VendorID == "" {
		vendor.VendorID = fmt.Sprintf("vendor-%d", len(m.vendors)+1)
	}
	m.vendors[vendor.VendorID] = vendor
	return nil
}

func (m *mockVendorRepo) GetByID(_ context.Context, orgID, id string) (*model.Vendor, error) {
	if v, ok := m.vendors[id]; ok && v.OrgID == orgID {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVendorRepo) List(_ context.Context, orgID string) ([]model.Vendor, error) {
	var result []model.Vendor
	for _, v := range m.vendors {
		if v.OrgID == orgID {
			result = append(result, *v)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockVendorRepo) Update(_ context.Context, vendor *model.Vendor) error {
	m.vendors[vendor.VendorID] = vendor
	return nil
}

func (m *mockVendorRepo) Delete(_ context.Context, orgID, id string) error {
	if v, ok := m.vendors[id]; ok && v.OrgID == orgID {
		delete(m.vendors, id)
	}
	return nil
}

// ── Mock InvoiceRepository ──

type mockInvoiceRepo struct {
	invoices map[string]*model.Invoice
	vendors  *mockVendorRepo
}

func newMockInvoiceRepo(vendors *mockVendorRepo) *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: make(map[string]*model.Invoice), vendors: vendors}
}

func (m *mockInvoiceRepo) Create(_ context.Context, invoice *model.Invoice, lines []model.InvoiceLine) error {
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = fmt.Sprintf("inv-%d", len(m.invoices)+1)
	}
	for i := range lines {
		lines[i].InvoiceID = invoice.InvoiceID
		if lines[i].LineID == "" {
			lines[i].LineID = fmt.Sprintf("%s-line-%d", invoice.InvoiceID, i+1)
		}
	}
	invoice.Lines = lines
	m.invoices[invoice.InvoiceID] = invoice
	return nil
}

func (m *mockInvoiceRepo) GetByID(_ context.Context, orgID, id string) (*model.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.OrgID != orgID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *inv
	if v, ok := m.vendors.vendors[inv.VendorID]; ok {
		copied.Vendor = v
	}
	return &copied, nil
}

func (m *mockInvoiceRepo) List(_ context.Context, orgID string, offset, limit int) ([]model.Invoice, int64, error) {
	var matched []model.Invoice
	for _, inv := range m.invoices {
		if inv.OrgID == orgID {
			matched = append(matched, *inv)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].InvoiceDate.After(matched[j].InvoiceDate) })

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockInvoiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	inv, ok := m.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.Status = status
	return nil
}

func (m *mockInvoiceRepo) GetLine(_ context.Context, invoiceID, lineID string) (*model.InvoiceLine, error) {
	inv, ok := m.invoices[invoiceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range inv.Lines {
		if inv.Lines[i].LineID == lineID {
			return &inv.Lines[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInvoiceRepo) UpdateLineMatch(_ context.Context, line *model.InvoiceLine) error {
	inv, ok := m.invoices[line.InvoiceID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range inv.Lines {
		if inv.Lines[i].LineID == line.LineID {
			inv.Lines[i].MatchedIngredientID = line.MatchedIngredientID
			inv.Lines[i].MatchSimilarity = line.MatchSimilarity
			inv.Lines[i].MatchType = line.MatchType
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock MenuItemRepository ──

type mockMenuItemRepo struct {
	items map[string]*model.MenuItem
}

func newMockMenuItemRepo() *mockMenuItemRepo {
	return &mockMenuItemRepo{items: make(map[string]*model.MenuItem)}
}

func (m *mockMenuItemRepo) Create(_ context.Context, item *model.MenuItem) error {
	if item.MenuItemID == "" {
		item.MenuItemID = fmt.Sprintf("menu-%d", len(m.items)+1)
	}
	m.items[item.MenuItemID] = item
	return nil
}

func (m *mockMenuItemRepo) GetByID(_ context.Context, orgID, id string) (*model.MenuItem, error) {
	if i, ok := m.items[id]; ok && i.OrgID == orgID {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuItemRepo) List(_ context.Context, orgID string, activeOnly bool) ([]model.MenuItem, error) {
	var result []model.MenuItem
	for _, i := range m.items {
		if i.OrgID != orgID {
			continue
		}
		if activeOnly && !i.Active {
			continue
		}
		result = append(result, *i)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockMenuItemRepo) Update(_ context.Context, item *model.MenuItem) error {
	m.items[item.MenuItemID] = item
	return nil
}

func (m *mockMenuItemRepo) Delete(_ context.Context, orgID, id string) error {
	if i, ok := m.items[id]; ok && i.OrgID == orgID {
		delete(m.items, id)
	}
	return nil
}

// ── test repo aggregate ──

// testRepos aggregates all mocks so tests can seed data directly.
type testRepos struct {
	org        *mockOrgRepo
	user       *mockUserRepo
	invite     *mockInviteCodeRepo
	ingredient *mockIngredientRepo
	recipe     *mockRecipeRepo
	inventory  *mockInventoryRepo
	prepTask   *mockPrepTaskRepo
	tempLog    *mockTemperatureLogRepo
	duty       *mockDutyRepo
	vendor     *mockVendorRepo
	invoice    *mockInvoiceRepo
	menuItem   *mockMenuItemRepo
}

func newTestRepos() *testRepos {
	ingredient := newMockIngredientRepo()
	user := newMockUserRepo()
	vendor := newMockVendorRepo()
	return &testRepos{
		org:        newMockOrgRepo(),
		user:       user,
		invite:     newMockInviteCodeRepo(),
		ingredient: ingredient,
		recipe:     newMockRecipeRepo(ingredient),
		inventory:  newMockInventoryRepo(ingredient),
		prepTask:   newMockPrepTaskRepo(),
		tempLog:    newMockTemperatureLogRepo(),
		duty:       newMockDutyRepo(user),
		vendor:     vendor,
		invoice:    newMockInvoiceRepo(vendor),
		menuItem:   newMockMenuItemRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Organization:   r.org,
		User:           r.user,
		InviteCode:     r.invite,
		Ingredient:     r.ingredient,
		Recipe:         r.recipe,
		Inventory:      r.inventory,
		PrepTask:       r.prepTask,
		TemperatureLog: r.tempLog,
		Duty:           r.duty,
		Vendor:         r.vendor,
		Invoice:        r.invoice,
		MenuItem:       r.menuItem,
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paulossjunior/dynamic-forms/internal/application/services"
	"github.com/paulossjunior/dynamic-forms/internal/domain/ports"
)

// SeedFile is the YAML document accepted by SeedFromFile
type SeedFile struct {
	Fields []SeedField `yaml:"fields"`
	Forms  []SeedForm  `yaml:"forms"`
}

// SeedField describes a field definition
type SeedField struct {
	EntityType      string         `yaml:"entity_type"`
	KeyName         string         `yaml:"key_name"`
	Label           string         `yaml:"label"`
	FieldType       string         `yaml:"field_type"`
	Options         []string       `yaml:"options"`
	ValidationRules map[string]any `yaml:"validation_rules"`
	Inactive        bool           `yaml:"inactive"`
}

// SeedForm describes a form. Fields reference definitions by entity type and key.
type SeedForm struct {
	Name        string             `yaml:"name"`
	Description *string            `yaml:"description"`
	Sections    []SeedSection      `yaml:"sections"`
	Fields      []SeedFormFieldRef `yaml:"fields"`
}

// SeedSection is an inline section of a seeded form
type SeedSection struct {
	TempID      string  `yaml:"temp_id"`
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Order       int     `yaml:"order"`
}

// SeedFormFieldRef links a seeded form to an existing definition
type SeedFormFieldRef struct {
	EntityType    string  `yaml:"entity_type"`
	KeyName       string  `yaml:"key_name"`
	SectionTempID *string `yaml:"section_temp_id"`
	IsRequired    bool    `yaml:"is_required"`
}

// SeedResult counts what a seeding run did
type SeedResult struct {
	FieldsCreated int
	FieldsSkipped int
	FormsCreated  int
	FormsSkipped  int
}

// SeedFromFile reads a YAML seed file and applies it
func SeedFromFile(ctx context.Context, uow ports.UnitOfWork, svcMgr *services.ServiceManager, path string) (*SeedResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return Seed(ctx, uow, svcMgr, seed)
}

// Seed applies field definitions and forms. Records whose unique key already
// exists are skipped, so running it twice is harmless.
func Seed(ctx context.Context, uow ports.UnitOfWork, svcMgr *services.ServiceManager, seed SeedFile) (*SeedResult, error) {
	result := &SeedResult{}
	repos := uow.Repositories()

	for _, f := range seed.Fields {
		existing, err := repos.Fields.GetByKey(ctx, f.EntityType, f.KeyName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.FieldsSkipped++
			continue
		}
		active := !f.Inactive
		if _, err := svcMgr.Fields.Create(ctx, services.CreateFieldRequest{
			EntityType:      f.EntityType,
			KeyName:         f.KeyName,
			Label:           f.Label,
			FieldType:       f.FieldType,
			Options:         f.Options,
			ValidationRules: f.ValidationRules,
			IsActive:        &active,
		}); err != nil {
			return nil, fmt.Errorf("seed field %s.%s: %w", f.EntityType, f.KeyName, err)
		}
		result.FieldsCreated++
	}

	for _, form := range seed.Forms {
		existing, err := repos.Forms.GetByName(ctx, form.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.FormsSkipped++
			continue
		}

		req := services.CreateFormRequest{Name: form.Name, Description: form.Description}
		for _, s := range form.Sections {
			req.Sections = append(req.Sections, services.SectionInput{
				TempID: s.TempID, Name: s.Name, Description: s.Description, Order: s.Order,
			})
		}
		for _, ref := range form.Fields {
			def, err := repos.Fields.GetByKey(ctx, ref.EntityType, ref.KeyName)
			if err != nil {
				return nil, err
			}
			if def == nil {
				return nil, fmt.Errorf("seed form %q: unknown field %s.%s", form.Name, ref.EntityType, ref.KeyName)
			}
			req.Fields = append(req.Fields, services.FieldInput{
				FieldID: def.ID, SectionTempID: ref.SectionTempID, IsRequired: ref.IsRequired,
			})
		}

		if _, err := svcMgr.Forms.CreateForm(ctx, req); err != nil {
			return nil, fmt.Errorf("seed form %q: %w", form.Name, err)
		}
		result.FormsCreated++
	}

	log.Printf("🌱 Seed applied: %d fields created (%d skipped), %d forms created (%d skipped)",
		result.FieldsCreated, result.FieldsSkipped, result.FormsCreated, result.FormsSkipped)
	return result, nil
}

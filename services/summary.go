package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"property-importer/models"
	"property-importer/utils"
)

// SummaryService computes portfolio stats over imported properties.
type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate aggregates counts and price statistics over the given records.
// Price stats consider each property's leading price: sale price when set,
// rent price otherwise; zero-priced properties are excluded.
func (s *SummaryService) Generate(properties []*models.Property) *models.ImportSummary {
	summary := &models.ImportSummary{
		ByPropertyType:   make(map[string]int),
		ByBusinessType:   make(map[string]int),
		PropertiesByCity: make(map[string]int),
	}

	if len(properties) == 0 {
		return summary
	}

	summary.TotalProperties = len(properties)

	var priced []*models.Property
	for _, p := range properties {
		summary.ByPropertyType[p.PropertyType]++
		summary.ByBusinessType[p.BusinessType]++
		if p.City != "" {
			summary.PropertiesByCity[p.City]++
		}
		if leadingPrice(p) > 0 {
			priced = append(priced, p)
		}
	}

	if len(priced) > 0 {
		summary.MinPrice = leadingPrice(priced[0])
		summary.MaxPrice = leadingPrice(priced[0])
		summary.MostExpensive = priced[0]
		var total float64
		for _, p := range priced {
			price := leadingPrice(p)
			total += price
			if price < summary.MinPrice {
				summary.MinPrice = price
			}
			if price > summary.MaxPrice {
				summary.MaxPrice = price
				summary.MostExpensive = p
			}
		}
		summary.AveragePrice = round2(total / float64(len(priced)))
		summary.MinPrice = round2(summary.MinPrice)
		summary.MaxPrice = round2(summary.MaxPrice)
	}

	return summary
}

func leadingPrice(p *models.Property) float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.RentPrice
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Print renders the summary to stdout for the operator.
func (s *SummaryService) Print(r *models.ImportSummary) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📋 RESUMEN DE IMPORTACIÓN\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Propiedades importadas\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total : \033[1m%d\033[0m\n", r.TotalProperties)
	fmt.Println()

	fmt.Printf("\033[1;33m  Precios\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.AveragePrice > 0 {
		fmt.Printf("  Promedio : \033[1;32m$%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Mínimo   : \033[1;32m$%.2f\033[0m\n", r.MinPrice)
		fmt.Printf("  Máximo   : \033[1;32m$%.2f\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  Sin datos de precio\n")
	}
	fmt.Println()

	if r.MostExpensive != nil {
		fmt.Printf("\033[1;33m  Propiedad más costosa\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.MostExpensive.Title["es"], 50))
		fmt.Printf("  Ciudad : %s\n", r.MostExpensive.City)
		fmt.Printf("  Precio : \033[1;31m$%.2f\033[0m\n", leadingPrice(r.MostExpensive))
		fmt.Println()
	}

	printCountSection("Por tipo de inmueble", r.ByPropertyType, thin)
	printCountSection("Por tipo de negocio", r.ByBusinessType, thin)
	printCountSection("Por ciudad", r.PropertiesByCity, thin)

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

func printCountSection(label string, counts map[string]int, thin string) {
	fmt.Printf("\033[1;33m  %s\033[0m\n", label)
	fmt.Printf("  %s\n", thin)
	if len(counts) == 0 {
		fmt.Printf("  Sin datos\n")
		fmt.Println()
		return
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	for _, e := range entries {
		fmt.Printf("  %-30s \033[1m%d\033[0m\n", truncate(e.name, 28), e.count)
	}
	fmt.Println()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

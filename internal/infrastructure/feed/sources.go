package feed

import (
	"fmt"
	"strings"

	"fdrates/internal/domain"
	"fdrates/internal/domain/value"
	"fdrates/pkg/errcodes"
)

// Source describes one institution feed. The slug names the JSON document
// under the feed base URL.
type Source struct {
	Name            string
	Slug            string
	InstitutionType value.InstitutionType
}

func (s Source) URL(baseURL string) string {
	return fmt.Sprintf("%s/%s.json", strings.TrimRight(baseURL, "/"), s.Slug)
}

// Registry is the fixed set of institutions we track. Scrapers upstream
// publish one JSON document per slug.
func Registry() []Source {
	return []Source{
		{Name: "Cargills Bank", Slug: "cargills-bank", InstitutionType: value.InstitutionBank},
		{Name: "Commercial Bank", Slug: "commercial-bank", InstitutionType: value.InstitutionBank},
		{Name: "DFCC Bank", Slug: "dfcc-bank", InstitutionType: value.InstitutionBank},
		{Name: "Hatton National Bank (HNB)", Slug: "hnb", InstitutionType: value.InstitutionBank},
		{Name: "MBSL Bank", Slug: "mbsl-bank", InstitutionType: value.InstitutionBank},
		{Name: "National Savings Bank (NSB)", Slug: "nsb", InstitutionType: value.InstitutionBank},
		{Name: "Nations Trust Bank", Slug: "nations-trust-bank", InstitutionType: value.InstitutionBank},
		{Name: "Pan Asia Bank", Slug: "pan-asia-bank", InstitutionType: value.InstitutionBank},
		{Name: "Sampath Bank", Slug: "sampath-bank", InstitutionType: value.InstitutionBank},
		{Name: "Alliance Finance", Slug: "alliance-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "CDB Finance", Slug: "cdb-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Commercial Credit", Slug: "commercial-credit", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Dialog Finance", Slug: "dialog-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "HNB Finance", Slug: "hnb-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Janashakthi Finance", Slug: "janashakthi-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "LOLC Finance", Slug: "lolc-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Mercantile Investments", Slug: "mercantile-investments", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Senkadagala Finance", Slug: "senkadagala-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Singer Finance", Slug: "singer-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Siyapatha Finance", Slug: "siyapatha-finance", InstitutionType: value.InstitutionFinanceCompany},
		{Name: "Vallibel Finance", Slug: "vallibel-finance", InstitutionType: value.InstitutionFinanceCompany},
	}
}

// Lookup finds a source by its display name.
func Lookup(name string) (Source, error) {
	for _, src := range Registry() {
		if src.Name == name {
			return src, nil
		}
	}

	return Source{}, domain.NewError(errcodes.SourceNotFound, "unknown feed source: "+name)
}

// LookupSlug finds a source by its slug.
func LookupSlug(slug string) (Source, error) {
	for _, src := range Registry() {
		if src.Slug == slug {
			return src, nil
		}
	}

	return Source{}, domain.NewError(errcodes.SourceNotFound, "unknown feed source: "+slug)
}

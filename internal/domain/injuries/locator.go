package injuries

import (
	"strings"

	"equine-vet-dashboard/internal/domain/clinical"
)

// Finding es una zona detectada con la severidad del evento que la originó.
type Finding struct {
	Region   Region
	Severity clinical.Severity
}

// Locator traduce el texto libre de un evento a zonas del cuerpo.
// Es la pieza reemplazable: un tagging estructurado puede implementarla sin tocar Mapper.
type Locator interface {
	Locate(title, notes string, severity clinical.Severity) []Finding
}

// KeywordLocator busca palabras clave (sin distinguir mayúsculas) en título y notas.
// Es una heurística: frases como "left fore" o "off hind" no se detectan.
type KeywordLocator struct{}

func (KeywordLocator) Locate(title, notes string, severity clinical.Severity) []Finding {
	t := strings.ToLower(title)
	n := strings.ToLower(notes)

	either := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(t, w) || strings.Contains(n, w) {
				return true
			}
		}
		return false
	}

	right := either("right")
	left := either("left")

	// "front" solo cuenta en el título: en notas aparece en frases sin relación ("in front of").
	fore := either("foreleg", "front leg") || strings.Contains(t, "front")
	hind := either("hind", "rear", "back leg")

	out := make([]Finding, 0, 4)
	add := func(regions ...Region) {
		for _, r := range regions {
			out = append(out, Finding{Region: r, Severity: severity})
		}
	}
	// articulaciones: derecha tiene prioridad si el texto nombra ambos lados
	sided := func(r, l Region) {
		if right {
			add(r)
		} else if left {
			add(l)
		}
	}

	if fore && right {
		add(RegionRightForeleg, RegionRightAnkle)
	}
	if fore && left {
		add(RegionLeftForeleg, RegionLeftAnkle)
	}
	if hind && right {
		add(RegionRightHind)
	}
	if hind && left {
		add(RegionLeftHind)
	}

	if either("ankle", "fetlock") {
		sided(RegionRightAnkle, RegionLeftAnkle)
	}
	if either("knee") {
		sided(RegionRightKnee, RegionLeftKnee)
	}
	if either("shoulder") {
		sided(RegionRightShoulder, RegionLeftShoulder)
	}
	if either("hip") {
		sided(RegionRightHip, RegionLeftHip)
	}

	if either("neck") {
		add(RegionNeck)
	}
	if either("back", "spine") {
		add(RegionBack)
	}

	return out
}

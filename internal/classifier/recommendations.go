package classifier

import "edu-perfil/internal/domain"

const maxRecommendations = 5

var styleTips = map[domain.LearningStyle][]string{
	domain.StyleVisual: {
		"📊 Usar organizadores visuales y mapas mentales",
		"🎨 Incorporar diagramas, gráficos e ilustraciones",
		"📹 Utilizar videos educativos y presentaciones visuales",
	},
	domain.StyleAuditivo: {
		"🎵 Incorporar explicaciones verbales y discusiones",
		"🎧 Utilizar podcasts educativos y audiolibros",
		"💬 Promover trabajo en grupo con diálogo",
	},
	domain.StyleKinestesico: {
		"🏃 Incorporar actividades prácticas y experimentos",
		"✋ Permitir movimiento durante el aprendizaje",
		"🧩 Usar manipulativos y materiales concretos",
	},
	domain.StyleLectoescritura: {
		"📚 Proporcionar lecturas complementarias",
		"✍️ Promover toma de notas y resúmenes escritos",
		"📝 Incluir actividades de redacción y reflexión",
	},
}

const (
	tipFastPace = "🚀 Proporcionar ejercicios de extensión y desafíos"
	tipSlowPace = "⏰ Dar tiempo adicional y fragmentar tareas"
)

var riskTips = map[domain.RiskLevel][]string{
	domain.RiskAlto: {
		"🆘 Requiere intervención y apoyo especializado",
		"👥 Considerar tutoría personalizada",
	},
	domain.RiskMedio: {
		"⚠️ Monitorear progreso de cerca",
	},
}

// Recommendations assembles style, pace, and risk tips in that order, capped
// at five entries.
func Recommendations(style domain.LearningStyle, speed domain.Speed, risk domain.RiskLevel) []string {
	tips, ok := styleTips[style]
	if !ok {
		tips = styleTips[domain.StyleVisual]
	}

	out := make([]string, 0, maxRecommendations+1)
	out = append(out, tips...)

	switch speed {
	case domain.SpeedRapido:
		out = append(out, tipFastPace)
	case domain.SpeedLento, domain.SpeedMuyLento:
		out = append(out, tipSlowPace)
	}

	out = append(out, riskTips[risk]...)

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

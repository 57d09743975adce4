package pipeline

import (
	"time"

	"bitacora/mediafeed/internal/media"
)

// Placeholders returns the fixed local content set served when
// aggregation yields nothing, e.g. when the upstream API is down or the
// client is offline. The records are shaped exactly like real items so
// consumers never branch on data provenance. A fresh copy is returned
// on every call.
func Placeholders() []media.Item {
	items := []media.Item{
		{
			ID:              "video1",
			Title:           "Recorriendo la Ruta 40 en moto - Los paisajes más impresionantes de Argentina",
			Description:     "Un viaje épico por la icónica Ruta 40 de Argentina en mi Royal Enfield Himalayan. Descubriendo paisajes increíbles y compartiendo experiencias únicas.",
			PublishedAt:     time.Date(2023, 12, 15, 15, 30, 0, 0, time.UTC),
			ThumbnailURL:    "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			DurationSeconds: 930, // 15:30
			ViewCount:       15432,
			LikeCount:       1200,
			GroupID:         "PLqo040G7sAp4SqwAI_5_3VcwEuk8xiMM5",
		},
		{
			ID:              "video2",
			Title:           "Construyendo mi casa rural - Parte 1: Cimientos y estructura",
			Description:     "Comienza la aventura de construir mi propia casa en el campo. En este primer episodio, trabajo en los cimientos y la estructura básica utilizando técnicas tradicionales.",
			PublishedAt:     time.Date(2023, 11, 20, 14, 0, 0, 0, time.UTC),
			ThumbnailURL:    "https://i.ytimg.com/vi/jNQXAC9IVRw/maxresdefault.jpg",
			DurationSeconds: 1335, // 22:15
			ViewCount:       8765,
			LikeCount:       950,
			GroupID:         "PLqo040G7sAp7uhQLbCuusvLIO8IPQUBHl",
		},
		{
			ID:              "video3",
			Title:           "La historia de Don Manuel - El último herrero tradicional",
			Description:     "Exploramos el mundo de la herrería tradicional junto a Don Manuel, uno de los últimos herreros artesanales de Argentina, quien nos cuenta su historia y pasión por este oficio.",
			PublishedAt:     time.Date(2023, 10, 5, 10, 15, 0, 0, time.UTC),
			ThumbnailURL:    "https://i.ytimg.com/vi/8UE6gzNuUJo/maxresdefault.jpg",
			DurationSeconds: 1125, // 18:45
			ViewCount:       12543,
			LikeCount:       1100,
			GroupID:         "PLqo040G7sAp5_HtCb6sDIpK-1bHb8q8RE",
		},
		{
			ID:              "short1",
			Title:           "Amanecer en la Ruta 40 🌅 #shorts",
			Description:     "El mejor momento del día para salir a la ruta.",
			PublishedAt:     time.Date(2023, 12, 18, 9, 0, 0, 0, time.UTC),
			ThumbnailURL:    "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			DurationSeconds: 42,
			ViewCount:       45678,
			LikeCount:       3200,
			GroupID:         "PLqo040G7sAp4SqwAI_5_3VcwEuk8xiMM5",
		},
		{
			ID:              "short2",
			Title:           "Cruzando un río con la moto 💦 #shorts",
			Description:     "A veces el camino te pone a prueba.",
			PublishedAt:     time.Date(2023, 12, 10, 17, 45, 0, 0, time.UTC),
			ThumbnailURL:    "https://i.ytimg.com/vi/jNQXAC9IVRw/maxresdefault.jpg",
			DurationSeconds: 58,
			ViewCount:       32456,
			LikeCount:       2100,
			GroupID:         "PLqo040G7sAp4SqwAI_5_3VcwEuk8xiMM5",
		},
	}

	// Same classification and ordering as real data.
	return Aggregate([][]media.Item{items})
}

package view

// Labels of the favorite toggle on the detail page.
const (
	LabelAddFavorite    = "Tambahkan ke Favorit"
	LabelRemoveFavorite = "Hapus dari Favorit"
)

// errorHTML is the degraded state shown for every data-loading failure.
const errorHTML = `<div class="error-message" data-state="error">
  <h2>Gagal Memuat Daftar Restoran</h2>
  <p>Anda sedang offline atau terjadi masalah dengan server. Silakan periksa koneksi internet Anda.</p>
</div>`

const notFoundHTML = `<p class="not-found">Halaman tidak ditemukan.</p>`

const listTemplate = `{{define "list"}}{{if not .}}<div class="no-restaurants-message" data-state="empty">
  <h2>Tidak Ada Restoran</h2>
  <p>Maaf, tidak ada restoran yang ditemukan.</p>
</div>{{else}}<div class="restaurant-list">
{{- range .}}
  <div class="restaurant-card">
    <img src="{{imageURL .PictureID}}" alt="Image of {{.Name}}" loading="lazy">
    <div class="restaurant-info">
      <h1>{{.Name}}</h1>
      <p>Kota: {{.City}}</p>
      <p>Rating: {{.Rating}}</p>
      <p>{{excerpt .Description}}</p>
      <a href="#/detail/{{.ID}}" class="restaurant-detail-link" data-fragment="#/detail/{{.ID}}">Lihat Detail</a>
    </div>
  </div>
{{- end}}
</div>{{end}}{{end}}`

const favoriteButtonTemplate = `{{define "favoriteButton"}}<button id="favoriteButton" class="favorite-button" data-id="{{.ID}}" aria-pressed="{{.Favorite}}">
  {{- if .Favorite}}` + LabelRemoveFavorite + `{{else}}` + LabelAddFavorite + `{{end -}}
</button>{{end}}`

const detailTemplate = `{{define "detail"}}<section class="restaurant-detail" data-id="{{.Detail.ID}}">
  <img src="{{imageURL .Detail.PictureID}}" alt="Image of {{.Detail.Name}}" class="detail-image">
  <div class="detail-info">
    <h1>{{.Detail.Name}}</h1>
    <p>Alamat: {{.Detail.Address}}</p>
    <p>Kota: {{.Detail.City}}</p>
    <p>Rating: {{.Detail.Rating}}</p>
    {{- if .Detail.Categories}}
    <p class="categories">Kategori: {{range $i, $c := .Detail.Categories}}{{if $i}}, {{end}}{{$c.Name}}{{end}}</p>
    {{- end}}
    <p class="description">{{.Detail.Description}}</p>
    {{template "favoriteButton" .Button}}
  </div>
  <div class="detail-menus">
    <div class="menu-foods">
      <h2>Menu Makanan</h2>
      <ul>{{range .Detail.Menus.Foods}}<li>{{.Name}}</li>{{end}}</ul>
    </div>
    <div class="menu-drinks">
      <h2>Menu Minuman</h2>
      <ul>{{range .Detail.Menus.Drinks}}<li>{{.Name}}</li>{{end}}</ul>
    </div>
  </div>
  <div class="detail-reviews">
    <h2>Ulasan Pelanggan</h2>
    {{- range .Detail.CustomerReviews}}
    <div class="review">
      <p class="review-name">{{.Name}} <span class="review-date">{{.Date}}</span></p>
      <p class="review-text">{{.Review}}</p>
    </div>
    {{- else}}
    <p class="no-reviews">Belum ada ulasan.</p>
    {{- end}}
  </div>
</section>{{end}}`

const aboutTemplate = `{{define "about"}}<section id="about-me" class="about-me-section">
  <div class="about-me-container">
    <div class="about-description">
{{.}}
    </div>
  </div>
</section>{{end}}`

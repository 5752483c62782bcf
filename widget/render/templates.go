package render

// widgetHTML is the single widget template. Layout variants share one
// markup skeleton and diverge on the container class plus the carousel
// script block.
const widgetHTML = `<div id="rw-root" class="rw-widget rw-{{.Cfg.Layout.Type}} rw-{{.Cfg.Style.ColorScheme}}" lang="{{.Cfg.Settings.Language}}" style="{{.RootStyle}}">
<style>
.rw-widget{ {{.Palette}} background:var(--rw-bg);color:var(--rw-fg);font-family:system-ui,-apple-system,sans-serif;box-sizing:border-box;padding:8px;}
.rw-widget *{box-sizing:border-box;}
.rw-header{display:flex;align-items:center;gap:12px;margin-bottom:var(--rw-gap);flex-wrap:wrap;}
.rw-header h2{font-size:1.25rem;margin:0;}
.rw-summary{color:var(--rw-muted);font-size:.9rem;}
.rw-stars{color:var(--rw-accent);letter-spacing:2px;}
.rw-cta{margin-left:auto;background:var(--rw-accent);color:#fff;border-radius:6px;padding:8px 14px;text-decoration:none;font-size:.9rem;}
.rw-items{display:grid;gap:var(--rw-gap);}
.rw-grid .rw-items{grid-template-columns:repeat(var(--rw-cols,3),1fr);}
.rw-masonry .rw-items{display:block;column-count:var(--rw-cols,3);column-gap:var(--rw-gap);}
.rw-masonry .rw-card{break-inside:avoid;margin-bottom:var(--rw-gap);}
.rw-list .rw-items{grid-template-columns:1fr;}
.rw-carousel .rw-items,.rw-slider .rw-items{display:flex;overflow-x:auto;scroll-snap-type:x mandatory;scrollbar-width:none;}
.rw-carousel .rw-card,.rw-slider .rw-card{flex:0 0 280px;scroll-snap-align:start;}
.rw-slider .rw-card{flex-basis:100%;}
.rw-card{background:var(--rw-card);border-radius:8px;padding:14px;}
.rw-card.rw-pinned{box-shadow:0 0 0 2px var(--rw-accent);}
.rw-card-head{display:flex;align-items:center;gap:10px;}
.rw-avatar{width:36px;height:36px;border-radius:50%;object-fit:cover;}
.rw-author{font-weight:600;font-size:.95rem;}
.rw-date{color:var(--rw-muted);font-size:.8rem;}
.rw-text{margin:10px 0 0;font-size:.92rem;line-height:1.45;}
.rw-link{color:var(--rw-accent);font-size:.8rem;text-decoration:none;}
.rw-nav{display:flex;justify-content:center;gap:8px;margin-top:var(--rw-gap);align-items:center;}
.rw-arrow{background:var(--rw-card);color:var(--rw-fg);border:0;border-radius:50%;width:32px;height:32px;cursor:pointer;}
.rw-dot{width:8px;height:8px;border-radius:50%;background:var(--rw-muted);border:0;padding:0;cursor:pointer;}
.rw-dot.rw-active{background:var(--rw-accent);}
.rw-badge-box{display:flex;flex-direction:column;align-items:center;gap:4px;padding:12px;}
.rw-badge-value{font-size:1.6rem;font-weight:700;}
.rw-empty{color:var(--rw-muted);text-align:center;padding:20px;font-size:.9rem;}
{{.CustomCSS}}
</style>
{{if .Cfg.Header.Enabled}}<div class="rw-header">
{{if .Cfg.Header.Title}}<h2>{{.Cfg.Header.Title}}</h2>{{end}}
{{if and .Cfg.Header.ShowRatingSummary .Summary}}<span class="rw-summary"><span class="rw-stars">★</span> {{fmtRating .Summary.AvgRating}}</span>{{end}}
{{if and .Cfg.Header.ShowReviewCount .Summary}}<span class="rw-summary">{{.Summary.TotalReviews}} reviews</span>{{end}}
{{if and .Cfg.Header.WriteReviewButton.Enabled .CTAURL}}<a class="rw-cta" href="{{.CTAURL}}" target="{{.LinkTarget}}" rel="noopener">{{.Cfg.Header.WriteReviewButton.Text}}</a>{{end}}
</div>{{end}}
{{if eq .Cfg.Layout.Type "badge"}}<div class="rw-badge-box">
{{if .Summary}}<span class="rw-badge-value">{{fmtRating .Summary.AvgRating}}</span>
<span class="rw-stars">{{starsAvg .Summary.AvgRating}}</span>
<span class="rw-summary">{{.Summary.TotalReviews}} reviews</span>
{{else}}<span class="rw-empty">No reviews yet</span>{{end}}
</div>
{{else}}{{if .Reviews}}<div class="rw-items" data-scroll-mode="{{.Cfg.Layout.ScrollMode}}"{{if .Autoplay}} data-autoplay-interval="{{.Cfg.Layout.Autoplay.Interval}}"{{if .Cfg.Layout.Autoplay.PauseOnHover}} data-pause-on-hover="1"{{end}}{{end}}>
{{range .Reviews}}<div class="rw-card{{if .Pinned}} rw-pinned{{end}}">
<div class="rw-card-head">
{{if .AuthorAvatarURL}}<img class="rw-avatar" src="{{.AuthorAvatarURL}}" alt="">{{end}}
<div><div class="rw-author">{{.AuthorName}}</div><div class="rw-date">{{fmtDate .ReviewedAt}}</div></div>
</div>
<div class="rw-stars">{{stars .Rating}}</div>
{{if .Text}}<p class="rw-text">{{.Text}}</p>{{end}}
{{if and .ReviewURL $.Cfg.Settings.ExternalLinks.Enabled}}<a class="rw-link" href="{{.ReviewURL}}" target="{{$.LinkTarget}}" rel="noopener nofollow">Read full review</a>{{end}}
</div>{{end}}
</div>
{{if .IsSlides}}<div class="rw-nav">
{{if .Cfg.Layout.Navigation.Arrows}}<button class="rw-arrow" data-dir="-1" aria-label="Previous">&#8249;</button>{{end}}
{{if .Cfg.Layout.Navigation.Dots}}<span class="rw-dots"></span>{{end}}
{{if .Cfg.Layout.Navigation.Arrows}}<button class="rw-arrow" data-dir="1" aria-label="Next">&#8250;</button>{{end}}
</div>{{end}}
{{else}}<div class="rw-empty">No reviews yet</div>{{end}}{{end}}
{{if .SchemaJSON}}<script type="application/ld+json">{{.SchemaJSON}}</script>{{end}}
<script>
(function(){
var root=document.getElementById("rw-root");
var target={{.ParentOrigin}}||"*";
function post(){if(window.parent&&window.parent!==window){window.parent.postMessage({type:"rc-widget-height",height:root.offsetHeight},target);}}
if(typeof ResizeObserver!=="undefined"){new ResizeObserver(post).observe(root);}else{window.addEventListener("resize",post);}
post();
})();
</script>
{{if .IsSlides}}<script>
(function(){
var track=document.querySelector("#rw-root .rw-items");
if(!track){return;}
var cards=track.children,idx=0;
function step(){return track.dataset.scrollMode==="page"?track.clientWidth:(cards[0]?cards[0].offsetWidth+parseInt(getComputedStyle(track).gap||0,10):0);}
function go(i){idx=Math.max(0,Math.min(i,cards.length-1));track.scrollTo({left:idx*step(),behavior:"smooth"});mark();}
function mark(){var dots=document.querySelectorAll("#rw-root .rw-dot");for(var i=0;i<dots.length;i++){dots[i].classList.toggle("rw-active",i===idx);}}
var dotsBox=document.querySelector("#rw-root .rw-dots");
if(dotsBox){for(var i=0;i<cards.length;i++){(function(i){var d=document.createElement("button");d.className="rw-dot";d.addEventListener("click",function(){go(i);});dotsBox.appendChild(d);})(i);}mark();}
var arrows=document.querySelectorAll("#rw-root .rw-arrow");
for(var a=0;a<arrows.length;a++){(function(btn){btn.addEventListener("click",function(){go(idx+parseInt(btn.dataset.dir,10));});})(arrows[a]);}
var interval=parseInt(track.dataset.autoplayInterval||"0",10),timer=null;
function start(){if(interval>0&&!timer){timer=setInterval(function(){go(idx+1>=cards.length?0:idx+1);},interval);}}
function stop(){if(timer){clearInterval(timer);timer=null;}}
if(track.dataset.pauseOnHover){track.addEventListener("mouseenter",stop);track.addEventListener("mouseleave",start);}
start();
})();
</script>{{end}}
</div>
`

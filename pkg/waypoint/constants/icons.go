package constants

// AppIconSVG is the application icon. The developer server rasterizes it
// into the PNG sizes the web manifest asks for.
const AppIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
<rect x="0" y="0" width="64" height="64" rx="12" fill="#1f6f5c"/>
<path d="M32 10 C21 10 14 18 14 27 C14 40 32 56 32 56 C32 56 50 40 50 27 C50 18 43 10 32 10 Z" fill="#f4f1de"/>
<circle cx="32" cy="27" r="7" fill="#1f6f5c"/>
</svg>`

// Icon sizes the developer server will rasterize.
var IconSizes = []int{32, 180, 192, 512}

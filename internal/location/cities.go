package location

// Built-in city table. Keys are normalized (lowercase, single spaces).
// Coordinates are approximate city centers, which is plenty for
// dawn/dusk computation.
var cities = map[string]Coordinates{
	"amsterdam":      {52.3676, 4.9041},
	"athens":         {37.9838, 23.7275},
	"auckland":       {-36.8485, 174.7633},
	"bangkok":        {13.7563, 100.5018},
	"barcelona":      {41.3874, 2.1686},
	"beijing":        {39.9042, 116.4074},
	"berlin":         {52.5200, 13.4050},
	"bogota":         {4.7110, -74.0721},
	"boston":         {42.3601, -71.0589},
	"brussels":       {50.8503, 4.3517},
	"bucharest":      {44.4268, 26.1025},
	"budapest":       {47.4979, 19.0402},
	"buenos aires":   {-34.6037, -58.3816},
	"cairo":          {30.0444, 31.2357},
	"cape town":      {-33.9249, 18.4241},
	"chicago":        {41.8781, -87.6298},
	"copenhagen":     {55.6761, 12.5683},
	"dallas":         {32.7767, -96.7970},
	"delhi":          {28.7041, 77.1025},
	"denver":         {39.7392, -104.9903},
	"dubai":          {25.2048, 55.2708},
	"dublin":         {53.3498, -6.2603},
	"edinburgh":      {55.9533, -3.1883},
	"helsinki":       {60.1695, 24.9354},
	"hong kong":      {22.3193, 114.1694},
	"istanbul":       {41.0082, 28.9784},
	"jakarta":        {-6.2088, 106.8456},
	"johannesburg":   {-26.2041, 28.0473},
	"kyiv":           {50.4501, 30.5234},
	"lagos":          {6.5244, 3.3792},
	"lima":           {-12.0464, -77.0428},
	"lisbon":         {38.7223, -9.1393},
	"london":         {51.5074, -0.1278},
	"los angeles":    {34.0522, -118.2437},
	"madrid":         {40.4168, -3.7038},
	"melbourne":      {-37.8136, 144.9631},
	"mexico city":    {19.4326, -99.1332},
	"miami":          {25.7617, -80.1918},
	"milan":          {45.4642, 9.1900},
	"montreal":       {45.5017, -73.5673},
	"moscow":         {55.7558, 37.6173},
	"mumbai":         {19.0760, 72.8777},
	"munich":         {48.1351, 11.5820},
	"nairobi":        {-1.2921, 36.8219},
	"new york":       {40.7128, -74.0060},
	"oslo":           {59.9139, 10.7522},
	"paris":          {48.8566, 2.3522},
	"prague":         {50.0755, 14.4378},
	"reykjavik":      {64.1466, -21.9426},
	"rio de janeiro": {-22.9068, -43.1729},
	"rome":           {41.9028, 12.4964},
	"san francisco":  {37.7749, -122.4194},
	"santiago":       {-33.4489, -70.6693},
	"sao paulo":      {-23.5505, -46.6333},
	"seattle":        {47.6062, -122.3321},
	"seoul":          {37.5665, 126.9780},
	"shanghai":       {31.2304, 121.4737},
	"singapore":      {1.3521, 103.8198},
	"stockholm":      {59.3293, 18.0686},
	"sydney":         {-33.8688, 151.2093},
	"taipei":         {25.0330, 121.5654},
	"tallinn":        {59.4370, 24.7536},
	"tel aviv":       {32.0853, 34.7818},
	"tokyo":          {35.6762, 139.6503},
	"toronto":        {43.6532, -79.3832},
	"vancouver":      {49.2827, -123.1207},
	"vienna":         {48.2082, 16.3738},
	"warsaw":         {52.2297, 21.0122},
	"zurich":         {47.3769, 8.5417},
}

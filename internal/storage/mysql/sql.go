package mysql

const insertCitySQL = `INSERT INTO cities (name) VALUES (?)`

const insertHotelSQL = `INSERT INTO hotels (name, address, city_id) VALUES (?, ?, ?)`

const insertRoomSQL = `INSERT INTO rooms (name, capacity, image, hotel_id) VALUES (?, ?, ?, ?)`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listCitiesSQL = `SELECT id, name FROM cities ORDER BY id`

const getCitySQL = `SELECT id, name FROM cities WHERE id = ?`

// Hotels always come back with their city resolved.
const selectHotelView = `
SELECT
  h.id,
  h.name,
  h.address,
  h.city_id,
  c.name
FROM hotels h
JOIN cities c ON c.id = h.city_id
`

const listHotelsSQL = selectHotelView + `ORDER BY h.id`

const getHotelSQL = selectHotelView + `WHERE h.id = ?`

const getRoomSQL = `
SELECT
  r.id,
  r.name,
  r.capacity,
  r.image,
  r.hotel_id,
  h.name,
  h.address,
  h.city_id,
  c.name
FROM rooms r
JOIN hotels h ON h.id = r.hotel_id
JOIN cities c ON c.id = h.city_id
WHERE r.id = ?
`

// LEFT JOIN so an existing hotel without rooms yields one row of NULLs,
// while an unknown hotel yields no rows at all.
const listRoomsByHotelSQL = `
SELECT
  r.id,
  r.name,
  r.capacity,
  r.image
FROM hotels h
LEFT JOIN rooms r ON r.hotel_id = h.id
WHERE h.id = ?
ORDER BY r.id
`
